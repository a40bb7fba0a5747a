package singleton_test

import (
	"fmt"

	"github.com/vnykmshr/gopatterns/pkg/creational/singleton"
)

type config struct {
	Env string
}

// Example demonstrates a lazily-constructed shared instance.
func Example() {
	cfg := singleton.New(func() *config {
		fmt.Println("loading config")
		return &config{Env: "production"}
	})

	// Construction happens exactly once, on first access.
	fmt.Println(cfg.Instance().Env)
	fmt.Println(cfg.Instance().Env)
	fmt.Println("same instance:", cfg.Instance() == cfg.Instance())

	// Output:
	// loading config
	// production
	// production
	// same instance: true
}

// Example_reset shows the test-only escape hatch.
func Example_reset() {
	h := singleton.New(func() *config { return &config{Env: "test"} })

	first := h.Instance()
	h.Reset()
	second := h.Instance()

	fmt.Println("fresh instance after reset:", first != second)
	// Output: fresh instance after reset: true
}
