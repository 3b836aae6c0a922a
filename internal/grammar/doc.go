package grammar

// Tables in this package never change after init; callers may read them
// concurrently from any number of goroutines without coordination.
