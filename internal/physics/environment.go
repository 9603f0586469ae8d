package physics

const (
	UpdateFrequency = 200.0
	UpdateInterval  = 1.0 / UpdateFrequency

	Gravity = 40.0
)

// Object is advanced by the environment on every fixed step.
type Object interface {
	Tick(dt, total float32)
}

// Environment turns variable frame deltas into fixed physics steps.
type Environment struct {
	objects []Object
	time    float32
	total   float32

	// StepHook runs before the objects on every step with the step length
	// and the time still pending.
	StepHook func(dt, pending float32)
}

func NewEnvironment() *Environment {
	return &Environment{}
}

// Update advances all objects by as many whole steps as delta allows and
// returns the number of steps taken. The remainder carries to the next call.
func (e *Environment) Update(delta float32) int {
	e.time += delta
	e.total += delta
	steps := 0
	for e.time >= UpdateInterval {
		if e.StepHook != nil {
			e.StepHook(UpdateInterval, e.time)
		}
		for _, o := range e.objects {
			o.Tick(UpdateInterval, e.total)
		}
		e.time -= UpdateInterval
		steps++
	}
	return steps
}

func (e *Environment) Add(o Object) {
	e.objects = append(e.objects, o)
}

func (e *Environment) Remove(o Object) {
	for i, existing := range e.objects {
		if existing == o {
			e.objects = append(e.objects[:i], e.objects[i+1:]...)
			return
		}
	}
}

// Pending returns the time not yet consumed by a step.
func (e *Environment) Pending() float32 {
	return e.time
}
