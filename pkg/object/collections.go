package object

// List is an ordered collection of objects.
type List struct {
	Elements []Object
}

func NewList(elements []Object) *List {
	return &List{Elements: elements}
}

func (l *List) Tag() TypeTag     { return TagList }
func (l *List) Type() ObjectType { return LIST_OBJ }
func (l *List) Inspect() string {
	out := "["
	for i, el := range l.Elements {
		if i > 0 {
			out += ", "
		}
		out += el.Inspect()
	}
	out += "]"
	return out
}

func (l *List) Len() int { return len(l.Elements) }

func (l *List) Get(i int) Object { return l.Elements[i] }

// Concat returns a new list holding l's elements followed by other's.
func (l *List) Concat(other *List) *List {
	elements := make([]Object, 0, len(l.Elements)+len(other.Elements))
	elements = append(elements, l.Elements...)
	elements = append(elements, other.Elements...)
	return &List{Elements: elements}
}
