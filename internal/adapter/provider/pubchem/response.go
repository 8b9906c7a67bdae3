package pubchem

import (
	"encoding/json"

	"github.com/heartmarshall/chemtrans/internal/domain"
)

// apiEnvelope is the three-way PUG REST response: a deferred computation
// (Waiting), a Fault, or a list of compound records. Pointer fields keep
// "absent" distinct from "present but empty".
type apiEnvelope struct {
	Waiting     *apiWaiting   `json:"Waiting"`
	Fault       *apiFault     `json:"Fault"`
	PCCompounds []apiCompound `json:"PC_Compounds"`
}

// apiWaiting is returned (HTTP 202) while PubChem computes a result.
type apiWaiting struct {
	ListKey string `json:"ListKey"`
	Message string `json:"Message"`
}

// apiFault is PubChem's error object.
type apiFault struct {
	Code    string   `json:"Code"`
	Message string   `json:"Message"`
	Details []string `json:"Details"`
}

// apiCompound is a single PC_Compounds record. Props is a pointer so a
// record without a property list can be told apart from an empty one.
type apiCompound struct {
	Props *[]apiProp `json:"props"`
}

// apiProp is one labelled property of a compound record.
type apiProp struct {
	URN   *apiURN   `json:"urn"`
	Value *apiValue `json:"value"`
}

type apiURN struct {
	Label string `json:"label"`
	Name  string `json:"name"`
}

// apiValue holds the property value. Only string values are used; numeric
// properties carry ival/fval instead and leave SVal nil.
type apiValue struct {
	SVal *string `json:"sval"`
}

type responseKind int

const (
	kindEmpty responseKind = iota
	kindWaiting
	kindFault
	kindCompounds
)

func (k responseKind) String() string {
	switch k {
	case kindWaiting:
		return "waiting"
	case kindFault:
		return "fault"
	case kindCompounds:
		return "compounds"
	default:
		return "empty"
	}
}

// response is the decoded variant of an apiEnvelope.
type response struct {
	kind     responseKind
	listKey  string
	fault    *FaultError
	compound apiCompound
}

// decodeEnvelope parses a PUG REST body.
func decodeEnvelope(body []byte) (*apiEnvelope, error) {
	var env apiEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &DecodeError{Reason: "invalid json", Err: err}
	}
	return &env, nil
}

// classify picks the variant, checked in order waiting, fault, compounds.
// With requireListKey a Waiting object without a ListKey is not treated as
// waiting; initial lookups need the key to start polling, while the poll
// loop only needs to know the result is still pending.
func (e *apiEnvelope) classify(requireListKey bool) response {
	switch {
	case e.Waiting != nil && (!requireListKey || e.Waiting.ListKey != ""):
		return response{kind: kindWaiting, listKey: e.Waiting.ListKey}
	case e.Fault != nil:
		return response{kind: kindFault, fault: &FaultError{
			Code:    e.Fault.Code,
			Message: e.Fault.Message,
			Details: e.Fault.Details,
		}}
	case len(e.PCCompounds) > 0:
		return response{kind: kindCompounds, compound: e.PCCompounds[0]}
	default:
		return response{kind: kindEmpty}
	}
}

// property returns the string value of the first property labelled label.
// A missing property, or one without a string value, yields "" and no error.
// A record with no property list, a property scanned before the match that
// has no urn, or a matching property with no value object is a DecodeError.
func (c apiCompound) property(label string) (string, error) {
	if c.Props == nil {
		return "", &DecodeError{Reason: "compound record has no props"}
	}
	for _, p := range *c.Props {
		if p.URN == nil {
			return "", &DecodeError{Reason: "property without urn"}
		}
		if p.URN.Label != label {
			continue
		}
		if p.Value == nil {
			return "", &DecodeError{Reason: "property " + label + " has no value"}
		}
		if p.Value.SVal == nil {
			return "", nil
		}
		return *p.Value.SVal, nil
	}
	return "", nil
}

func orUnknown(s string) string {
	if s == "" {
		return domain.Unknown
	}
	return s
}
