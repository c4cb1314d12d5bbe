// Package tribonacci evaluates the sequence
//
//	value(0)=0, value(1)=1, value(2)=2, value(n)=value(n-1)+value(n-2)+value(n-3)
//
// through a write-once cache owned by an Evaluator. One Evaluator may be
// shared by any number of goroutines, directly or through the tribonacci
// effect handler, which routes requests for the same index to the same worker.
package tribonacci
