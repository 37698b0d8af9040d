// Package stages assembles pipelines of type-erased stages at runtime.
//
// Stages are built from typed functions, so each one records its input and
// output types. Add checks every new stage against its predecessor and Build
// reports the first *StageError wrapping ErrStageMismatch before anything
// runs. Values whose type is only known at run time are checked again before
// each call; a value of a type assignable to the stage input is converted.
//
// A stage result that is a mon variant is used as is, any other value is
// wrapped in mon.Present. The pipeline is left-biased: an absent Optional or
// a right-sided Branch ends the run and is returned.
//
// Add must not run concurrently with anything else. Once stages are added,
// Build and Run only read the Pipeline and may be called from several
// goroutines.
package stages
