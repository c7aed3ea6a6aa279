package di

// Constructible is the capability a type implements to declare how to build
// itself from a Registry. The constraint is self-referential: a buildable
// type T implements Constructible[T].
//
// FromRegistry may call [Get] for previously inserted raw values, [Build]
// for nested Constructible dependencies, and any other fallible logic; it
// returns the fully formed value or an error. Construction is single-shot:
// on failure no partially constructed value escapes.
//
//	type Mailer struct {
//		from string
//	}
//
//	func (Mailer) FromRegistry(r *di.Registry) (Mailer, error) {
//		cfg, err := di.Get[Config](r)
//		if err != nil {
//			return Mailer{}, err
//		}
//		return Mailer{from: cfg.Sender}, nil
//	}
type Constructible[T any] interface {
	// FromRegistry assembles a new T from the registry's contents.
	//
	// Build invokes it on T's zero value, so the receiver carries no state;
	// it exists only to give the type a construction entry point.
	FromRegistry(r *Registry) (T, error)
}

// Build constructs a T by invoking its [Constructible] logic against the
// registry. On failure the returned error is a [BuildError] tagged with T
// and wrapping the cause, so a broken link anywhere in a nested dependency
// chain stays diagnosable from the outermost call.
//
// Build holds no lock while the construction logic runs, so FromRegistry
// implementations are free to re-enter Get and Build. There is no cycle
// detection: a type whose construction transitively builds itself recurses
// until the stack runs out.
func Build[T Constructible[T]](r *Registry) (T, error) {
	var seed T
	v, err := seed.FromRegistry(r)
	if err != nil {
		var zero T
		return zero, BuildError{Type: typeOf[T](), Err: err}
	}
	return v, nil
}

// MustBuild constructs a T or panics with the underlying [BuildError].
func MustBuild[T Constructible[T]](r *Registry) T {
	v, err := Build[T](r)
	if err != nil {
		panic(err)
	}
	return v
}
