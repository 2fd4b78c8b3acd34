package parser

import (
	"strconv"

	"lox/scanner"
)

// Value is a runtime value. Values are immutable.
type Value interface {
	Format() string
	value()
}

type StringValue string

type RealValue float64

type BooleanValue bool

type NilValue struct{}

// Nil is the only NilValue.
var Nil Value = NilValue{}

func (v StringValue) Format() string { return string(v) }
func (v RealValue) Format() string { return scanner.FormatNumber(float64(v)) }
func (v BooleanValue) Format() string { return strconv.FormatBool(bool(v)) }
func (NilValue) Format() string { return "nil" }

func (StringValue) value() {}
func (RealValue) value() {}
func (BooleanValue) value() {}
func (NilValue) value() {}
