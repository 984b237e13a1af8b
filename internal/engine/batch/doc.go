// Package batch evaluates many strategies at once.
//
// A Processor splits items into fixed-size batches and runs them either in
// order or concurrently under an errgroup limit. RunSweep builds on it to
// evaluate a grid of carbon prices or a list of named scenarios, keeping
// results in input order regardless of completion order.
package batch
