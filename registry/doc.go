// Package registry keeps many priority queues side by side under distinct names.
//
// A Registry owns every queue it creates. Callers receive non-owning
// *priority.Queue references from AddQueue and Queue and use them for all
// element-level work; the registry only adds, finds and removes whole queues.
//
// Teardown happens in two phases. ClearAll empties the contents of every queue
// but keeps the queues registered, so the same names can be filled again.
// RemoveQueue both empties a queue and drops it from the registry.
//
// Basic usage:
//
//	r := registry.New()
//
//	jobs, err := r.AddQueue("jobs")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = jobs.Insert("build", 10)
//
//	if q, ok := r.Queue("jobs"); ok {
//	    head, _ := q.Peek()
//	    fmt.Println(head)
//	}
//
//	switch r.RemoveQueue("jobs") {
//	case registry.RemoveNonEmpty:
//	    fmt.Println("dropped queued work")
//	}
//
// Names are listed newest first. All walks the elements of every queue in one
// descending priority order.
package registry
