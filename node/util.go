package node

import "reflect"

var errorType = reflect.TypeFor[error]()

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	return t.Implements(errorType)
}

// isSetValue reports whether a map with values of type t is used as a set.
func isSetValue(t reflect.Type) bool {
	switch t.Kind() {
	default:
		return false
	case reflect.Bool:
		return true
	case reflect.Struct:
		return t.NumField() == 0
	}
}

// receiverArgs is the number of leading receiver arguments in the func type
// of a method obtained from t.
func receiverArgs(t reflect.Type) int {
	if t.Kind() == reflect.Interface {
		return 0
	}

	return 1
}
