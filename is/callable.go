package is

import "reflect"

// Predicate is a pure classification function. Missing arguments are seen as
// Undefined.
type Predicate func(args ...any) bool

// asPredicate adapts fn to a Predicate. fn must be a non-nil func with a single
// bool result. Funcs with concrete parameter types are called through
// reflection: an argument that does not fit its parameter makes the call
// return false, and a missing argument becomes the parameter's zero value.
func asPredicate(fn any) (Predicate, bool) {
	switch f := fn.(type) {
	case nil:
		return nil, false
	case Predicate:
		return f, f != nil
	case func(...any) bool:
		return Predicate(f), f != nil
	case func(any) bool:
		if f == nil {
			return nil, false
		}
		return func(args ...any) bool { return f(arg(args, 0)) }, true
	case func(any, any) bool:
		if f == nil {
			return nil, false
		}
		return func(args ...any) bool { return f(arg(args, 0), arg(args, 1)) }, true
	case func(any, any, any) bool:
		if f == nil {
			return nil, false
		}
		return func(args ...any) bool { return f(arg(args, 0), arg(args, 1), arg(args, 2)) }, true
	}

	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, false
	}
	t := rv.Type()
	if t.NumOut() != 1 || t.Out(0).Kind() != reflect.Bool {
		return nil, false
	}
	return func(args ...any) bool {
		in, ok := callArgs(t, args)
		if !ok {
			return false
		}
		return rv.Call(in)[0].Bool()
	}, true
}

func callArgs(t reflect.Type, args []any) ([]reflect.Value, bool) {
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
	}

	in := make([]reflect.Value, 0, max(fixed, len(args)))
	for i := 0; i < fixed; i++ {
		v, ok := argValue(t.In(i), arg(args, i))
		if !ok {
			return nil, false
		}
		in = append(in, v)
	}
	if t.IsVariadic() {
		elem := t.In(fixed).Elem()
		for i := fixed; i < len(args); i++ {
			v, ok := argValue(elem, args[i])
			if !ok {
				return nil, false
			}
			in = append(in, v)
		}
	}
	return in, true
}

func argValue(pt reflect.Type, a any) (reflect.Value, bool) {
	if _, missing := a.(undefined); missing {
		if pt.Kind() == reflect.Interface && reflect.TypeOf(a).Implements(pt) {
			return reflect.ValueOf(a), true
		}
		return reflect.Zero(pt), true
	}
	if a == nil {
		switch pt.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
			return reflect.Zero(pt), true
		}
		return reflect.Value{}, false
	}

	av := reflect.ValueOf(a)
	if !av.Type().AssignableTo(pt) {
		return reflect.Value{}, false
	}
	return av, true
}
