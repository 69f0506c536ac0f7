// Package collections provides small generic containers: a growable array
// list, a min-first priority queue, an always-sorted repository, an unordered
// repository and a stack.
//
// None of the containers lock internally. Callers sharing an instance across
// goroutines must guard every call on it with a single mutex.
package collections
