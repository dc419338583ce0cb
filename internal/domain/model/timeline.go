package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	domainErrors "github.com/polkiloo/tigercart/internal/domain/errors"
)

// Step identifies one milestone of the delivery checklist.
type Step int

const (
	StepOrderAccepted Step = iota
	StepVenmoPaymentReceived
	StepShoppingInUStore
	StepCheckedOut
	StepOnDelivery
	StepDelivered
)

var stepNames = [...]string{
	"Order Accepted",
	"Venmo Payment Received",
	"Shopping in U-Store",
	"Checked Out",
	"On Delivery",
	"Delivered",
}

// StepCount is the number of checklist milestones.
const StepCount = len(stepNames)

func (s Step) String() string {
	if !s.valid() {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return stepNames[s]
}

func (s Step) valid() bool {
	return s >= 0 && int(s) < StepCount
}

// ParseStep resolves a display name into a Step.
func ParseStep(name string) (Step, error) {
	for i, n := range stepNames {
		if n == name {
			return Step(i), nil
		}
	}
	return 0, domainErrors.ErrInvalidStep
}

// Steps lists all milestones in checklist order.
func Steps() []Step {
	steps := make([]Step, StepCount)
	for i := range steps {
		steps[i] = Step(i)
	}
	return steps
}

// Timeline holds completion flags for every checklist step.
// Checked steps always form a prefix of the checklist.
type Timeline [StepCount]bool

// Checked reports whether the step is completed.
func (t Timeline) Checked(s Step) bool {
	return s.valid() && t[s]
}

// Delivered reports whether the final step is completed.
func (t Timeline) Delivered() bool {
	return t[StepDelivered]
}

// IsPrefix reports whether the checked steps form a prefix of the checklist.
func (t Timeline) IsPrefix() bool {
	for i := 1; i < StepCount; i++ {
		if t[i] && !t[i-1] {
			return false
		}
	}
	return true
}

// Set changes a single step. Checking requires the previous step to be
// checked; unchecking requires every later step to be unchecked.
func (t *Timeline) Set(s Step, checked bool) error {
	if !s.valid() {
		return domainErrors.ErrInvalidStep
	}
	if checked {
		if s > 0 && !t[s-1] {
			return domainErrors.ErrOutOfOrder
		}
	} else {
		for later := s + 1; int(later) < StepCount; later++ {
			if t[later] {
				return domainErrors.ErrOutOfOrder
			}
		}
	}
	t[s] = checked
	return nil
}

// MarshalJSON encodes the timeline as an object keyed by step name in checklist order.
func (t Timeline) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range stepNames {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if t[i] {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object keyed by step name. Missing steps are unchecked.
func (t *Timeline) UnmarshalJSON(data []byte) error {
	var raw map[string]bool
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var decoded Timeline
	for name, checked := range raw {
		step, err := ParseStep(name)
		if err != nil {
			return fmt.Errorf("unknown timeline step %q", name)
		}
		decoded[step] = checked
	}
	*t = decoded
	return nil
}
