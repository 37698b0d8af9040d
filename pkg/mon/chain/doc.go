// Package chain provides a minimal fluent Chain[T] over mon.Optional for
// synchronous composition.
//
// - Start/FromValue/Empty: create a Chain
// - Then/Map/Check: continue while a value is present
// - Or/And: fallback and conjunction of chains
// - RepeatUntil/While: loop a step while a value is present
// - Ensure: trigger side effects without changing the value
// - Finally: reduce to a concrete value
//
// Steps that change the value type are package functions (Then, Map,
// Through) since methods cannot introduce type parameters.
package chain
