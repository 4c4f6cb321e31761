package domain

import "fmt"

// ClientStatus is the lifecycle status of a client.
type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientPending  ClientStatus = "pending"
	ClientInactive ClientStatus = "inactive"
)

// PlanType is the kind of service plan a client pays for.
type PlanType string

const (
	PlanOnline   PlanType = "online"    // Consultoria Online
	PlanInPerson PlanType = "in_person" // Personal Presencial
	PlanHybrid   PlanType = "hybrid"    // Híbrido
)

// PlanTypes lists every plan type in display order.
var PlanTypes = []PlanType{PlanOnline, PlanInPerson, PlanHybrid}

// PaymentStatus is the billing state of a client.
type PaymentStatus string

const (
	PaymentCurrent PaymentStatus = "current"
	PaymentPending PaymentStatus = "pending"
	PaymentOverdue PaymentStatus = "overdue"
)

// Gender is optional anthropometric data.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (s ClientStatus) Valid() bool {
	switch s {
	case ClientActive, ClientPending, ClientInactive:
		return true
	}
	return false
}

func (s *ClientStatus) UnmarshalText(text []byte) error {
	v := ClientStatus(text)
	if !v.Valid() {
		return fmt.Errorf("unknown client status %q", text)
	}
	*s = v
	return nil
}

func (p PlanType) Valid() bool {
	switch p {
	case PlanOnline, PlanInPerson, PlanHybrid:
		return true
	}
	return false
}

// Label is the name shown to clients in messages.
func (p PlanType) Label() string {
	switch p {
	case PlanOnline:
		return "Consultoria Online"
	case PlanInPerson:
		return "Personal Presencial"
	case PlanHybrid:
		return "Híbrido"
	}
	return string(p)
}

func (p *PlanType) UnmarshalText(text []byte) error {
	v := PlanType(text)
	if !v.Valid() {
		return fmt.Errorf("unknown plan type %q", text)
	}
	*p = v
	return nil
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentCurrent, PaymentPending, PaymentOverdue:
		return true
	}
	return false
}

func (s *PaymentStatus) UnmarshalText(text []byte) error {
	v := PaymentStatus(text)
	if !v.Valid() {
		return fmt.Errorf("unknown payment status %q", text)
	}
	*s = v
	return nil
}

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// UnmarshalText accepts an empty value as "not informed".
func (g *Gender) UnmarshalText(text []byte) error {
	v := Gender(text)
	if v != "" && !v.Valid() {
		return fmt.Errorf("unknown gender %q", text)
	}
	*g = v
	return nil
}
