package value

// Kind is the closed enumeration of structured error kinds the evaluator can
// produce. It plays the role adt.ErrorCode plays in the teacher, except
// Kind distinguishes every failure mode the spec calls out by name rather
// than only a coarse severity class, since nothing here drives control flow
// the way IncompleteError/CycleError do in CUE's unification engine.
type Kind int8

const (
	_ Kind = iota
	ParseKid
	MissingKey
	NotAReference
	WrongType
	IncorrectBooleanIdentity
	MissingPersistentObject
	NotStandardType
	NoIdentity
	TooManyArgsInFunction
	WrongTypeIdForType
	ExpectedTypeGotFunction
	ExpectOnlyOneImplementation
	ExpectOneImplementationFoundZero
	NoImplementationForFunction
	TooManyArguments
	ArgumentReferenceNoKPart
	ArgumentReferenceTooLarge
	NoBuiltin
	ExpectedFunctionCallGotType
	TestCaseFailed
	CantHeadEmptyList
	TypeMismatch
	Unimplemented
	RecursedTooDeep
	StepBudgetExceeded
	TestData
)

var kindNames = [...]string{
	ParseKid:                         "ParseKid",
	MissingKey:                       "MissingKey",
	NotAReference:                    "NotAReference",
	WrongType:                        "WrongType",
	IncorrectBooleanIdentity:         "IncorrectBooleanIdentity",
	MissingPersistentObject:          "MissingPersistentObject",
	NotStandardType:                  "NotStandardType",
	NoIdentity:                       "NoIdentity",
	TooManyArgsInFunction:            "TooManyArgsInFunction",
	WrongTypeIdForType:               "WrongTypeIdForType",
	ExpectedTypeGotFunction:          "ExpectedTypeGotFunction",
	ExpectOnlyOneImplementation:      "ExpectOnlyOneImplementation",
	ExpectOneImplementationFoundZero: "ExpectOneImplementationFoundZero",
	NoImplementationForFunction:      "NoImplementationForFunction",
	TooManyArguments:                 "TooManyArguments",
	ArgumentReferenceNoKPart:         "ArgumentReferenceNoKPart",
	ArgumentReferenceTooLarge:        "ArgumentReferenceTooLarge",
	NoBuiltin:                        "NoBuiltin",
	ExpectedFunctionCallGotType:      "ExpectedFunctionCallGotType",
	TestCaseFailed:                   "TestCaseFailed",
	CantHeadEmptyList:                "CantHeadEmptyList",
	TypeMismatch:                     "TypeMismatch",
	Unimplemented:                    "Unimplemented",
	RecursedTooDeep:                  "RecursedTooDeep",
	StepBudgetExceeded:               "StepBudgetExceeded",
	TestData:                         "TestData",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
