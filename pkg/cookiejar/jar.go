package cookiejar

import (
	"iter"

	"github.com/warpdl/warpcookie/pkg/logger"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultGenerator is the program name written into the cookie file header.
const DefaultGenerator = "warpcookie"

// Jar is an insertion-ordered collection of cookies keyed by name.
// A Jar may be bound to a cookie file, in which case Save can be called
// without a path.
type Jar struct {
	cookies   *orderedmap.OrderedMap[string, *Cookie]
	file      string
	store     Store
	log       logger.Logger
	generator string
}

// Option configures a Jar.
type Option func(*Jar)

// WithStore sets the file store used by Load and Save.
func WithStore(s Store) Option {
	return func(j *Jar) {
		if s != nil {
			j.store = s
		}
	}
}

// WithLogger sets the logger that receives warnings about skipped input.
func WithLogger(l logger.Logger) Option {
	return func(j *Jar) {
		if l != nil {
			j.log = l
		}
	}
}

// WithGenerator sets the program name written into the cookie file header.
func WithGenerator(name string) Option {
	return func(j *Jar) {
		if name != "" {
			j.generator = name
		}
	}
}

// New returns an empty jar that is not bound to any file.
func New(opts ...Option) *Jar {
	j := &Jar{
		cookies:   orderedmap.New[string, *Cookie](),
		store:     OSStore(),
		log:       logger.NewNopLogger(),
		generator: DefaultGenerator,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// FromCookies returns an unbound jar holding cookies in the given order.
// It returns ErrInvalidCookie if any element is nil.
func FromCookies(cookies []*Cookie, opts ...Option) (*Jar, error) {
	j := New(opts...)
	for _, c := range cookies {
		if err := j.Set(c); err != nil {
			return nil, err
		}
	}
	return j, nil
}

// Set inserts c, replacing any cookie with the same name. A replaced name
// keeps its original position.
func (j *Jar) Set(c *Cookie) error {
	if c == nil {
		return ErrInvalidCookie
	}
	j.cookies.Set(c.name, c)
	return nil
}

// Get returns the cookie stored under name.
func (j *Jar) Get(name string) (*Cookie, bool) {
	return j.cookies.Get(name)
}

// Delete removes the cookie stored under name and reports whether it existed.
func (j *Jar) Delete(name string) bool {
	_, ok := j.cookies.Delete(name)
	return ok
}

// Len returns the number of cookies in the jar.
func (j *Jar) Len() int {
	return j.cookies.Len()
}

// Path returns the cookie file the jar is bound to, or "" for unbound jars.
func (j *Jar) Path() string {
	return j.file
}

// All iterates over the cookies in insertion order.
func (j *Jar) All() iter.Seq2[string, *Cookie] {
	return func(yield func(string, *Cookie) bool) {
		for pair := j.cookies.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Cookies returns the cookies in insertion order.
func (j *Jar) Cookies() []*Cookie {
	out := make([]*Cookie, 0, j.cookies.Len())
	for _, c := range j.All() {
		out = append(out, c)
	}
	return out
}

// Clone returns an unbound jar with copies of every cookie in the same order.
// The clone shares the store, logger and generator of j.
func (j *Jar) Clone() *Jar {
	cp := New(WithStore(j.store), WithLogger(j.log), WithGenerator(j.generator))
	for name, c := range j.All() {
		cp.cookies.Set(name, c.Clone())
	}
	return cp
}
