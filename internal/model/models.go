package model

import (
	"time"

	"github.com/google/uuid"
)

type ID = uint

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleStaff      Role = "staff"
	RoleVet        Role = "vet"
	RoleVolunteer  Role = "volunteer"
	RoleRegistered Role = "registered"
)

func Roles() []Role {
	return []Role{RoleAdmin, RoleStaff, RoleVet, RoleVolunteer, RoleRegistered}
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleVet, RoleVolunteer, RoleRegistered:
		return true
	}
	return false
}

type User struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	Name     string `json:"name" db:"name"`
	Username string `json:"username" db:"username"`
	Password []byte `json:"-" db:"password"`

	Role     Role `json:"role" db:"role"`
	Disabled bool `json:"disabled" db:"disabled"`
}

type Session struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	Token      uuid.UUID `json:"token" db:"token"`
	Expiration time.Time `json:"expiration" db:"expiration"`

	User ID `json:"userId" db:"user_id"`
}

type AnimalStatus string

const (
	AnimalAvailable  AnimalStatus = "available"
	AnimalQuarantine AnimalStatus = "quarantine"
	AnimalAdopted    AnimalStatus = "adopted"
	AnimalDeceased   AnimalStatus = "deceased"
)

func (s AnimalStatus) Valid() bool {
	switch s {
	case AnimalAvailable, AnimalQuarantine, AnimalAdopted, AnimalDeceased:
		return true
	}
	return false
}

type Animal struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	Name        string `json:"name" db:"name"`
	Species     string `json:"species" db:"species"`
	Age         int    `json:"age" db:"age"`
	Description string `json:"description" db:"description"`
	Photo       []byte `json:"-" db:"photo"`

	Status AnimalStatus `json:"status" db:"status"`
	Hidden bool         `json:"hidden" db:"hidden"`
}

// Bookable reports whether volunteers may reserve walks for the animal.
func (a Animal) Bookable() bool {
	return a.Status == AnimalAvailable && !a.Hidden
}

type WalkStatus string

const (
	WalkPending   WalkStatus = "pending"
	WalkAccepted  WalkStatus = "accepted"
	WalkRejected  WalkStatus = "rejected"
	WalkStarted   WalkStatus = "started"
	WalkFinished  WalkStatus = "finished"
	WalkCancelled WalkStatus = "cancelled"
)

func (s WalkStatus) Valid() bool {
	switch s {
	case WalkPending, WalkAccepted, WalkRejected, WalkStarted, WalkFinished, WalkCancelled:
		return true
	}
	return false
}

type Walk struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	Animal ID `json:"animalId" db:"animal_id"`
	User   ID `json:"userId" db:"user_id"`

	Date     time.Time `json:"date" db:"date"`
	Duration int       `json:"duration" db:"duration"` // minutes
	Location string    `json:"location" db:"location"`

	Status WalkStatus `json:"status" db:"status"`
}

// End is the exclusive end of the walk interval.
func (w Walk) End() time.Time {
	return w.Date.Add(time.Duration(w.Duration) * time.Minute)
}

// Active reports whether the walk still occupies its time interval.
func (w Walk) Active() bool {
	return w.Status != WalkRejected && w.Status != WalkCancelled
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestAccepted, RequestRejected:
		return true
	}
	return false
}

type AdoptionRequest struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	User   ID `json:"userId" db:"user_id"`
	Animal ID `json:"animalId" db:"animal_id"`

	Date    time.Time     `json:"date" db:"date"`
	Status  RequestStatus `json:"status" db:"status"`
	Message string        `json:"message" db:"message"`
}

type VolunteerApplication struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	User ID `json:"userId" db:"user_id"`

	Date    time.Time     `json:"date" db:"date"`
	Status  RequestStatus `json:"status" db:"status"`
	Message string        `json:"message" db:"message"`
}

type VetRequest struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	Animal ID `json:"animalId" db:"animal_id"`
	User   ID `json:"userId" db:"user_id"`

	Date        time.Time     `json:"date" db:"date"`
	Description string        `json:"description" db:"description"`
	Status      RequestStatus `json:"status" db:"status"`
}

type MedicalHistory struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	Animal ID `json:"animalId" db:"animal_id"`

	StartDate   time.Time `json:"startDate" db:"start_date"`
	Description string    `json:"description" db:"description"`
}

type Treatment struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	MedicalHistory ID `json:"medicalHistoryId" db:"medical_history_id"`

	Date        time.Time `json:"date" db:"date"`
	Description string    `json:"description" db:"description"`
}

type Vaccination struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	MedicalHistory ID `json:"medicalHistoryId" db:"medical_history_id"`

	Date        time.Time `json:"date" db:"date"`
	Description string    `json:"description" db:"description"`
}
