/*
Package gopatterns provides classic design patterns as small, independent,
production-ready Go packages.

Each pattern lives in its own package and depends on no other pattern;
pick the ones you need.

Creational (pkg/creational):
  - singleton: lazily-initialized single shared instance (documented as an
    anti-pattern; read the package docs before reaching for it)
  - factory: registry-based construction, separating creation from use

Resource management (pkg/resource):
  - pool: fixed-capacity pool of reusable, expensive-to-construct objects

Structural (pkg/structural):
  - bridge: decouple an abstraction from its implementation so each can
    vary independently

Behavioral (pkg/behavioral):
  - strategy: swap interchangeable algorithms behind a fixed call signature
  - observer: subject/subscriber notification, with a Redis-backed
    cross-process variant in observer/distributed

Example usage:

	import (
		"github.com/vnykmshr/gopatterns/pkg/behavioral/observer"
		"github.com/vnykmshr/gopatterns/pkg/resource/pool"
	)

	p, _ := pool.New(4, newConn) // 4 pre-built connections
	subject := observer.NewSubject[string]()

	sub, _ := subject.Subscribe(observer.Func[string](func(ctx context.Context, e string) error {
		fmt.Println("got", e)
		return nil
	}))
	defer sub.Cancel()
*/
package gopatterns
