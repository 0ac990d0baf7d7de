// Package immutable provides persistent containers. Every operation that
// would change a container returns a new one and leaves the receiver intact.
//
// Each container also exposes, on its zero value, the factory hooks the plan
// builder relies on: NewBuilder for Array, List, Set and SortedSet, and
// FromSlice for Array, Queue and Stack.
package immutable
