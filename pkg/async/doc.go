// Package async provides small generic helpers for running computations in
// goroutines and waiting for their outcome.
//
// A Future is obtained from Async, which starts the supplied function in its
// own goroutine and returns immediately. Callers wait with Await,
// AwaitContext or AwaitWithTimeout, poll with IsComplete, or select on Done.
// Resolved and Rejected build futures that are already complete.
//
// AllSettled joins a fan-out: it waits for every future, independently of
// individual failures, and reports each outcome in input order. Forms use it
// to validate all fields concurrently and continue only once every field has
// settled.
//
// # Usage
//
//	futures := make([]*async.Future[bool], 0, len(fields))
//	for _, field := range fields {
//	    futures = append(futures, async.Async(ctx, field, validateField))
//	}
//	results := async.AllSettled(futures...)
//	if err := async.FirstError(results); err != nil {
//	    // at least one validation could not run
//	}
//
// # Error Handling
//
// Futures carry the error returned by the callback. When the context is
// already cancelled the callback is skipped and the future settles with
// ctx.Err(). A panicking callback is recovered and reported as ErrPanic;
// AwaitWithTimeout reports ErrTimeout.
package async
