package marshal

import (
	"reflect"
)

type union struct {
	typ     reflect.Type
	members []*member
}

type member struct {
	typ    reflect.Type
	record *record // nil for scalar members
}

type unionDecl struct {
	iface   reflect.Type
	members []reflect.Type
}

// Union registers the members of the interface I in the order they are
// tried while decoding. Members are usually zero values:
//
//	marshal.Union[Paper](PaperUser{}, PaperStandard{})
func Union[I any](members ...I) Option {
	decl := unionDecl{iface: reflect.TypeFor[I]()}
	for _, m := range members {
		decl.members = append(decl.members, reflect.TypeOf(m))
	}

	return func(cfg *config) {
		cfg.unions = append(cfg.unions, decl)
	}
}

func (u *union) member(t reflect.Type) *member {
	for _, m := range u.members {
		if m.typ == t {
			return m
		}
	}

	return nil
}

func (u *union) names() []string {
	out := make([]string, len(u.members))
	for i, m := range u.members {
		out[i] = m.typ.Name()
	}

	return out
}
