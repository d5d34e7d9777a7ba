package registry_test

import (
	"fmt"

	"github.com/KavinB2004/QueueManager/registry"
)

// ExampleRegistry demonstrates adding, using and removing named queues.
func ExampleRegistry() {
	r := registry.New()

	jobs, _ := r.AddQueue("jobs")
	_, _ = r.AddQueue("mail")

	_ = jobs.Insert("build", 10)
	_ = jobs.Insert("test", 5)

	fmt.Println(r.Names(), r.Count())

	if q, ok := r.Queue("jobs"); ok {
		head, _ := q.Peek()
		fmt.Println("head:", head)
	}

	fmt.Println(r.RemoveQueue("jobs"))
	fmt.Println(r.RemoveQueue("mail"))
	fmt.Println(r.RemoveQueue("jobs"))

	// Output:
	// [mail jobs] 2
	// head: build
	// removed non-empty
	// removed empty
	// not found
}

// ExampleRegistry_All walks every queue in one priority order.
func ExampleRegistry_All() {
	r := registry.New()
	a, _ := r.AddQueue("a")
	b, _ := r.AddQueue("b")

	_ = a.Insert("a-low", 1)
	_ = a.Insert("a-high", 9)
	_ = b.Insert("b-mid", 5)
	_ = b.Insert("b-tie", 1)

	for item := range r.All() {
		fmt.Printf("%d %s/%s\n", item.Priority, item.Queue, item.Element)
	}

	// Output:
	// 9 a/a-high
	// 5 b/b-mid
	// 1 a/a-low
	// 1 b/b-tie
}
