// Package fix provides fixed points: the Y combinator for anonymous
// recursion and numeric fixed-point iteration for root finding.
//
// Point iterates x = f(x) from a guess until two successive values are
// closer than the tolerance. Sqrt, CubeRoot and Newton are built on it.
package fix
