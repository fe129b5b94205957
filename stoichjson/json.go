/*
 * json.go, part of gostoich.
 *
 *
 * Copyright 2024 The goStoich authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package stoichjson

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	stoich "github.com/rmera/gostoich"
	"github.com/rmera/gostoich/formula"
)

//Operations understood by Process.
const (
	OpCalculate   = "calculate"
	OpBalance     = "balance"
	OpValidate    = "validate"
	OpMolarMass   = "molarmass"
	OpComposition = "composition"
)

//Request is one job sent by the calling program.
type Request struct {
	ID        string            `json:"id,omitempty"` //echoed back in the response
	Op        string            `json:"op"`
	Equation  string            `json:"equation,omitempty"`
	Formula   string            `json:"formula,omitempty"`
	Reactants []stoich.Reactant `json:"reactants,omitempty"`
	Actual    *stoich.Actual    `json:"actual,omitempty"`
}

//Response carries either a result or an error.
type Response struct {
	ID          string                     `json:"id,omitempty"`
	Op          string                     `json:"op"`
	Result      *stoich.Result             `json:"result,omitempty"`
	Balance     *stoich.BalanceResult      `json:"balance,omitempty"`
	Validation  *stoich.EquationValidation `json:"validation,omitempty"`
	MolarMass   *float64                   `json:"molarMass,omitempty"`
	Composition []stoich.Share             `json:"composition,omitempty"`
	Error       *Error                     `json:"error,omitempty"`
}

//An easily JSON-serializable error type,
type Error struct {
	deco          []string
	IsError       bool //If this is false (no error) all the other fields will be at their zero-values.
	InRequest     bool //If error, was it in decoding the request?
	InProcess     bool
	InPostProcess bool   //was it in preparing the output?
	Kind          string //syntax, unknown-element, invalid-equation, unbalanced, input or other
	Function      string //which go function gave the error
	Message       string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - ")) //Yo, dawg, I heard you like errors, so I got an error while serializing your error so you can... you know the drill.
	}
	return ret
}

//Takes an error and some additional info to create a json-marshal-ble error
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "request":
		jerr.InRequest = true
	case "postprocess":
		jerr.InPostProcess = true
	default:
		jerr.InProcess = true
	}
	jerr.Function = function
	jerr.Message = err.Error()
	jerr.Kind = kind(err)
	return jerr
}

func kind(err error) string {
	var (
		se *formula.SyntaxError
		ue *stoich.UnknownElementError
		ie *stoich.InvalidEquationError
		be *stoich.UnbalancedEquationError
		pe *stoich.InputError
	)
	switch {
	case errors.As(err, &se):
		return "syntax"
	case errors.As(err, &ue):
		return "unknown-element"
	case errors.As(err, &ie):
		return "invalid-equation"
	case errors.As(err, &be):
		return "unbalanced"
	case errors.As(err, &pe):
		return "input"
	}
	return "other"
}

//DecodeRequest Decodes or unmarshals one line of json into a Request.
//It returns io.EOF, unwrapped, when there is nothing else to read.
func DecodeRequest(stdin *bufio.Reader) (*Request, error) {
	line, err := stdin.ReadBytes('\n')
	if len(strings.TrimSpace(string(line))) == 0 {
		if err == nil {
			return nil, NewError("request", "DecodeRequest", fmt.Errorf("empty request"))
		}
		if err == io.EOF {
			return nil, io.EOF
		}
	}
	if err != nil && err != io.EOF {
		return nil, NewError("request", "DecodeRequest", err)
	}
	ret := new(Request)
	if err := json.Unmarshal(line, ret); err != nil {
		return nil, NewError("request", "DecodeRequest", err)
	}
	return ret, nil
}

//Process runs the job in req against the element table t (nil for the built-in one).
//Failures are returned inside the response.
func Process(req *Request, t stoich.Table) *Response {
	const funcname = "Process"
	resp := &Response{ID: req.ID, Op: req.Op}
	var err error
	switch req.Op {
	case OpCalculate:
		if err = stoich.ValidateInput(req.Reactants, req.Actual); err == nil {
			resp.Result, err = stoich.Calculate(req.Equation, req.Reactants, req.Actual, t)
		}
	case OpBalance:
		resp.Balance, err = stoich.CheckBalance(req.Equation)
	case OpValidate:
		v := stoich.ValidateEquation(req.Equation, t)
		resp.Validation = &v
	case OpMolarMass:
		var mm float64
		if mm, err = stoich.MolarMass(req.Formula, t); err == nil {
			resp.MolarMass = &mm
		}
	case OpComposition:
		resp.Composition, err = stoich.Composition(req.Formula, t)
	default:
		resp.Error = NewError("request", funcname, fmt.Errorf("unknown operation %q", req.Op))
		return resp
	}
	if err != nil {
		resp.Error = NewError("process", funcname+"("+req.Op+")", err)
	}
	return resp
}

//Send Marshals the response and writes to out, returns an error or nil
func (R *Response) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(R); err != nil {
		return NewError("postprocess", "Response.Send", err)
	}
	return nil
}

//Serve reads requests from in, one per line, until EOF, and writes one response
//per request to out. Malformed requests get an error response; only failures to
//write to out stop the loop.
func Serve(in io.Reader, out io.Writer, t stoich.Table) error {
	stream := bufio.NewReader(in)
	for {
		req, err := DecodeRequest(stream)
		if err == io.EOF {
			return nil
		}
		var resp *Response
		if err != nil {
			resp = &Response{Error: err.(*Error)}
		} else {
			resp = Process(req, t)
		}
		if jerr := resp.Send(out); jerr != nil {
			jerr.Decorate("Serve")
			return jerr
		}
	}
}
