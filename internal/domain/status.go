package domain

import "fmt"

// OrderStatus is a closed set of order lifecycle states. Values outside the
// declared ones cannot be constructed from other packages.
type OrderStatus struct{ name string }

var (
	StatusProcessing = OrderStatus{"processing"}
	StatusDispensed  = OrderStatus{"dispensed"}
	StatusFailed     = OrderStatus{"failed"}
)

var orderStatuses = []OrderStatus{StatusProcessing, StatusDispensed, StatusFailed}

func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range orderStatuses {
		if st.name == s {
			return st, nil
		}
	}
	return OrderStatus{}, InvalidInput("status", fmt.Sprintf("unknown order status %q", s))
}

func (s OrderStatus) String() string { return s.name }

func (s OrderStatus) IsZero() bool { return s.name == "" }

func (s OrderStatus) IsTerminal() bool {
	return s == StatusDispensed || s == StatusFailed
}

func (s OrderStatus) MarshalText() ([]byte, error) {
	return []byte(s.name), nil
}

func (s *OrderStatus) UnmarshalText(b []byte) error {
	st, err := ParseOrderStatus(string(b))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// DeviceOutcome is the closed set of results reported by the dispenser.
// The zero value means no outcome has been reported yet.
type DeviceOutcome struct{ name string }

var (
	OutcomeSuccess     = DeviceOutcome{"success"}
	OutcomeMotorError  = DeviceOutcome{"motor_error"}
	OutcomeSensorError = DeviceOutcome{"sensor_error"}
	OutcomeTimeout     = DeviceOutcome{"timeout"}
)

var deviceOutcomes = []DeviceOutcome{OutcomeSuccess, OutcomeMotorError, OutcomeSensorError, OutcomeTimeout}

func ParseDeviceOutcome(s string) (DeviceOutcome, error) {
	for _, o := range deviceOutcomes {
		if o.name == s {
			return o, nil
		}
	}
	return DeviceOutcome{}, InvalidInput("device_response", fmt.Sprintf("unknown device response %q", s))
}

func (o DeviceOutcome) String() string { return o.name }

func (o DeviceOutcome) IsZero() bool { return o.name == "" }

// Status is the terminal order status an outcome leads to.
func (o DeviceOutcome) Status() OrderStatus {
	switch o {
	case OutcomeSuccess:
		return StatusDispensed
	case OutcomeMotorError, OutcomeSensorError, OutcomeTimeout:
		return StatusFailed
	}
	return OrderStatus{}
}

func (o DeviceOutcome) MarshalText() ([]byte, error) {
	return []byte(o.name), nil
}

func (o *DeviceOutcome) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*o = DeviceOutcome{}
		return nil
	}
	out, err := ParseDeviceOutcome(string(b))
	if err != nil {
		return err
	}
	*o = out
	return nil
}
