package syntax

// DefaultCapacity is the slot capacity used when the caller has no
// particular bound in mind.
const DefaultCapacity = 128

// MaxCapacity is the largest capacity Compile will reserve storage for.
const MaxCapacity = 1 << 20

// compiler holds the state of a single compilation.
type compiler struct {
	src      string
	capacity int
	insts    []Inst
	slots    int

	// prev is the index of the most recently emitted element that a
	// closure could wrap, or -1 if there is none.
	prev int
}

// Compile compiles source into a program that fits within capacity slots.
//
// Errors are returned as *Error wrapping ErrIllegalPattern,
// ErrPatternTooLong or ErrOutOfMemory. The pattern is never truncated: a
// program is either complete or not returned at all.
func Compile(source string, capacity int) (*Prog, error) {
	if capacity > MaxCapacity {
		return nil, &Error{Pattern: source, Err: ErrOutOfMemory}
	}
	if source == "" {
		return nil, &Error{Err: ErrIllegalPattern}
	}

	c := &compiler{
		src:      source,
		capacity: capacity,
		insts:    make([]Inst, 0, min(len(source)+1, max(capacity, 0))),
		prev:     -1,
	}
	if err := c.compile(); err != nil {
		return nil, err
	}

	return &Prog{
		insts:   c.insts,
		pattern: source,
		slots:   c.slots,
	}, nil
}

func (c *compiler) compile() error {
	src := c.src
	pos := 0
	for pos < len(src) {
		start := pos
		switch src[pos] {
		case '.':
			pos++
			if err := c.emit(start, Inst{Op: OpAnyByte}); err != nil {
				return err
			}

		case '^':
			pos++
			inst := Inst{Op: OpBeginAnchor}
			if len(c.insts) > 0 {
				inst = Inst{Op: OpLiteral, Byte: '^'}
			}
			if err := c.emit(start, inst); err != nil {
				return err
			}

		case '$':
			pos++
			inst := Inst{Op: OpEndAnchor}
			if pos < len(src) {
				inst = Inst{Op: OpLiteral, Byte: '$'}
			}
			if err := c.emit(start, inst); err != nil {
				return err
			}

		case '[':
			set, end, ok := parseClass(src, pos+1)
			if !ok {
				return c.errorf(start, ErrIllegalPattern)
			}
			pos = end + 1
			if err := c.emit(start, Inst{Op: OpClass, Class: &set}); err != nil {
				return err
			}

		case '*', '+', '?':
			pos++
			if err := c.wrap(start, closureOp(src[start])); err != nil {
				return err
			}

		default:
			var b byte
			b, pos = decodeEscape(src, pos)
			if err := c.emit(start, Inst{Op: OpLiteral, Byte: b}); err != nil {
				return err
			}
		}
	}

	c.prev = -1
	return c.emit(len(src), Inst{Op: OpEnd})
}

// emit appends inst, which becomes the element a following closure wraps.
func (c *compiler) emit(offset int, inst Inst) error {
	if err := c.reserve(offset, inst.slots()); err != nil {
		return err
	}
	c.insts = append(c.insts, inst)
	c.prev = len(c.insts) - 1
	return nil
}

// wrap replaces the previous element with a closure of kind op around it.
// Only atomic elements can be wrapped; the closure itself stays "previous"
// so that a second operator on it is rejected.
func (c *compiler) wrap(offset int, op Op) error {
	if c.prev < 0 || !c.insts[c.prev].Op.IsAtomic() {
		return c.errorf(offset, ErrIllegalPattern)
	}
	if err := c.reserve(offset, closureSlots); err != nil {
		return err
	}
	sub := c.insts[c.prev]
	c.insts[c.prev] = Inst{Op: op, Sub: &sub}
	return nil
}

func (c *compiler) reserve(offset, n int) error {
	if c.slots+n > c.capacity {
		return c.errorf(offset, ErrPatternTooLong)
	}
	c.slots += n
	return nil
}

func (c *compiler) errorf(offset int, err error) error {
	return &Error{Pattern: c.src, Offset: offset, Err: err}
}

func closureOp(c byte) Op {
	switch c {
	case '*':
		return OpStar
	case '+':
		return OpPlus
	default:
		return OpOptional
	}
}
