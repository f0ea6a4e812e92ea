package logging

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Domain field helpers

func Vertex(label string) Field {
	return String("vertex", label)
}

func EdgePair(u, v string) Field {
	return String("edge", u+"-"+v)
}

func Operation(op string) Field {
	return String("operation", op)
}

func SessionID(id string) Field {
	return String("session_id", id)
}

func Count(n int) Field {
	return Int("count", n)
}
