// Package partition turns a sample count, split ratios, and an explicit random
// generator into a train/val/test index assignment.
//
// Nothing here touches the filesystem or process-wide random state: callers
// construct the generator with NewRand and pass it in, so the same count,
// ratios, and seed always yield the same assignment.
package partition
