package marshal

import "reflect"

// Dealer hands out record types in the order they were first needed, each
// exactly once.
type Dealer struct {
	needs []reflect.Type
	done  map[reflect.Type]struct{}
}

func (d *Dealer) Next() (reflect.Type, bool) {
	if len(d.needs) == 0 {
		return nil, false
	}

	t := d.needs[0]
	d.needs = d.needs[1:]

	return t, true
}

func (d *Dealer) Needs(t reflect.Type) {
	if d.done == nil {
		d.done = make(map[reflect.Type]struct{})
	}

	if _, exists := d.done[t]; exists {
		return
	}

	d.done[t] = struct{}{}
	d.needs = append(d.needs, t)
}

func (d *Dealer) Seen(t reflect.Type) bool {
	_, ok := d.done[t]
	return ok
}
