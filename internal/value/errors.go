package value

import (
	"fmt"
	"strings"

	"github.com/marius851000/wikifunction-intepreter-2/internal/kid"
	"github.com/marius851000/wikifunction-intepreter-2/wferrors"
)

// EvalError is the evaluator's structured error, playing the role adt.Bottom
// plays for CUE: a single struct whose fields are interpreted according to
// Kind, carrying a human message (via wferrors.Message, mirroring how
// adt.Bottom wraps a cue/errors.Error) plus a reversible trace.
//
// Evaluate and Refine return the partially-consumed value alongside an
// *EvalError, so it survives for replay; most other fallible evaluator
// operations return a nil value with the error.
type EvalError struct {
	Kind Kind
	msg  wferrors.Message
	Key  kid.Kid // MissingKey, ArgumentReferenceNoKPart
	Zid  kid.Zid // IncorrectBooleanIdentity, MissingPersistentObject, NoImplementationForFunction, NoBuiltin
	Zid2 kid.Zid // WrongTypeIdForType's "expected" side, when applicable
	Got  int     // TooManyArguments, ArgumentReferenceTooLarge
	Want int     // TooManyArguments
	Text string  // Unimplemented
	R    V       // TestCaseFailed

	Trace []TraceEntry
}

func newErr(k Kind, msg wferrors.Message) *EvalError {
	return &EvalError{Kind: k, msg: msg}
}

func ErrParseKid(text string, cause error) *EvalError {
	return newErr(ParseKid, wferrors.NewMessage("cannot parse key identifier %q: %v", text, cause))
}

func ErrMissingKey(k kid.Kid) *EvalError {
	e := newErr(MissingKey, wferrors.NewMessage("missing key %s", k))
	e.Key = k
	return e
}

func ErrNotAReference() *EvalError {
	return newErr(NotAReference, wferrors.NewMessage("expected a reference"))
}

func ErrWrongType(got, expected kid.Zid) *EvalError {
	e := newErr(WrongType, wferrors.NewMessage("wrong type, got %s, expected %s", got, expected))
	e.Zid, e.Zid2 = got, expected
	return e
}

func ErrIncorrectBooleanIdentity(z kid.Zid) *EvalError {
	e := newErr(IncorrectBooleanIdentity, wferrors.NewMessage("incorrect identity reference for boolean: %s", z))
	e.Zid = z
	return e
}

func ErrMissingPersistentObject(z kid.Zid) *EvalError {
	e := newErr(MissingPersistentObject, wferrors.NewMessage("persistent object %s does not exist", z))
	e.Zid = z
	return e
}

func ErrNotStandardType() *EvalError {
	return newErr(NotStandardType, wferrors.NewMessage("not a standard type that can be expressed as just a Zid"))
}

func ErrNoIdentity() *EvalError {
	return newErr(NoIdentity, wferrors.NewMessage("value has no identity key"))
}

func ErrTooManyArgsInFunction() *EvalError {
	return newErr(TooManyArgsInFunction, wferrors.NewMessage("too many arguments declared in function"))
}

func ErrWrongTypeIdForType() *EvalError {
	return newErr(WrongTypeIdForType, wferrors.NewMessage("wrong type id for type"))
}

func ErrExpectedTypeGotFunction() *EvalError {
	return newErr(ExpectedTypeGotFunction, wferrors.NewMessage("expected a type, got a function"))
}

func ErrExpectOnlyOneImplementation() *EvalError {
	return newErr(ExpectOnlyOneImplementation, wferrors.NewMessage("expected only one implementation"))
}

func ErrExpectOneImplementationFoundZero() *EvalError {
	return newErr(ExpectOneImplementationFoundZero, wferrors.NewMessage("expected one implementation, found zero"))
}

func ErrNoImplementationForFunction(z kid.Zid) *EvalError {
	e := newErr(NoImplementationForFunction, wferrors.NewMessage("no implementation for function %s", z))
	e.Zid = z
	return e
}

func ErrTooManyArguments(got, want int) *EvalError {
	e := newErr(TooManyArguments, wferrors.NewMessage("too many arguments, got %d, expected %d", got, want))
	e.Got, e.Want = got, want
	return e
}

func ErrArgumentReferenceNoKPart(k kid.Kid) *EvalError {
	e := newErr(ArgumentReferenceNoKPart, wferrors.NewMessage("argument reference %s has no K-part", k))
	e.Key = k
	return e
}

func ErrArgumentReferenceTooLarge(i int) *EvalError {
	e := newErr(ArgumentReferenceTooLarge, wferrors.NewMessage("argument reference index %d too large", i))
	e.Got = i
	return e
}

func ErrNoBuiltin(z kid.Zid) *EvalError {
	e := newErr(NoBuiltin, wferrors.NewMessage("no builtin implementation for %s", z))
	e.Zid = z
	return e
}

func ErrExpectedFunctionCallGotType() *EvalError {
	return newErr(ExpectedFunctionCallGotType, wferrors.NewMessage("expected a function call, got a type"))
}

func ErrTestCaseFailed(r V) *EvalError {
	e := newErr(TestCaseFailed, wferrors.NewMessage("test case failed"))
	e.R = r
	return e
}

func ErrCantHeadEmptyList() *EvalError {
	return newErr(CantHeadEmptyList, wferrors.NewMessage("cannot take head of an empty list"))
}

func ErrTypeMismatch() *EvalError {
	return newErr(TypeMismatch, wferrors.NewMessage("type mismatch"))
}

func ErrUnimplemented(text string) *EvalError {
	e := newErr(Unimplemented, wferrors.NewMessage("unimplemented: %s", text))
	e.Text = text
	return e
}

func ErrRecursedTooDeep() *EvalError {
	return newErr(RecursedTooDeep, wferrors.NewMessage("recursed too deep"))
}

func ErrStepBudgetExceeded() *EvalError {
	return newErr(StepBudgetExceeded, wferrors.NewMessage("step budget exceeded"))
}

func ErrTestData() *EvalError {
	return newErr(TestData, wferrors.NewMessage("this explicitly invalid data shouldn't be reached outside of a unit test"))
}

// Wrap returns a copy of e with entry appended to its trace. It never
// mutates e, matching the "errors are immutable once constructed, only
// accumulate trace" discipline of adt.Bottom/CombineErrors.
func (e *EvalError) Wrap(entry TraceEntry) *EvalError {
	cp := *e
	cp.Trace = append(append([]TraceEntry(nil), e.Trace...), entry)
	return &cp
}

func (e *EvalError) Error() string {
	var b strings.Builder
	b.WriteString(e.msg.Error())
	for i := len(e.Trace) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "\n\tat %s", e.Trace[i])
	}
	return b.String()
}
