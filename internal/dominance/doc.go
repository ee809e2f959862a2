// Package dominance implements Pareto-dominance comparison and nondominated filtering.
//
// All comparisons run on a minimisation view of the input: maximised objectives are
// negated once up front. Point q dominates p when q is no worse in every objective
// and strictly better in at least one.
//
// Without KeepWeakly, exact duplicates dominate each other and only the last copy
// (in input order) is retained. With KeepWeakly every copy of a nondominated point
// is retained.
package dominance
