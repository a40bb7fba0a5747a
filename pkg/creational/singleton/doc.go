/*
Package singleton provides a lazily-initialized, concurrency-safe holder for a
single shared instance of a type.

This pattern is documented here as an anti-pattern. Before using it, consider
passing the dependency explicitly instead. The classic objections:

  - You lose control over creation: a caller can never tell whether Instance
    returned an existing value or triggered construction.
  - Hidden coupling: everything that reads the shared instance is implicitly
    coupled to everything that mutates it.
  - Testing is painful, because tests cannot easily get a fresh instance.
    Handle.Reset exists only to soften this, and is itself a wart.
  - Naive lazy initialization is racy; two goroutines hitting an
    uninitialized singleton at the same time can observe two instances.
    Handle serializes first access so this failure mode, at least, is gone.

When a process-wide value is genuinely the right call (a root logger, a
metrics registry), Handle keeps the idiom small and safe:

	var db = singleton.New(func() *sql.DB {
		conn, err := sql.Open("postgres", dsn)
		if err != nil {
			panic(err)
		}
		return conn
	})

	func handler() {
		db.Instance().Query(...)
	}

The package also ships Logger, a process-wide zerolog logger, as the canonical
worked example of the idiom.
*/
package singleton
