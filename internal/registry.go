package internal

// ID identifies one registration in a Registry.
// IDs are minted from a per-registry counter starting at 1, so the zero ID is never issued.
type ID uint64

type subscriber struct {
	id ID
	fn func(any)
}

// Registry keeps subscribers in registration order.
type Registry struct {
	// last issued id
	counter ID

	subs []subscriber
}

func NewRegistry() *Registry {
	return &Registry{
		subs: make([]subscriber, 0),
	}
}

func (r *Registry) Add(fn func(any)) ID {
	r.counter++
	r.subs = append(r.subs, subscriber{id: r.counter, fn: fn})

	return r.counter
}

// Remove drops the subscriber registered under id. Unknown or already removed ids are ignored.
func (r *Registry) Remove(id ID) {
	for i, sub := range r.subs {
		if sub.id == id {
			// copy instead of re-slicing in place so that snapshots taken earlier stay intact
			subs := make([]subscriber, 0, len(r.subs)-1)
			subs = append(subs, r.subs[:i]...)
			r.subs = append(subs, r.subs[i+1:]...)
			return
		}
	}
}

func (r *Registry) Len() int {
	return len(r.subs)
}

// Snapshot returns the callbacks currently registered, in registration order.
func (r *Registry) Snapshot() []func(any) {
	fns := make([]func(any), len(r.subs))
	for i, sub := range r.subs {
		fns[i] = sub.fn
	}

	return fns
}

// Notify calls every subscriber registered at call time with v.
// Subscribers added or removed by a callback don't affect the ongoing notification.
func (r *Registry) Notify(v any) {
	for _, fn := range r.Snapshot() {
		fn(v)
	}
}
