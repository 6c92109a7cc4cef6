// Package request declares the concrete schemas of the API: the outer
// method envelope and the argument shapes of the two methods. The schema
// table is built once at init and read-only afterwards; there is no
// runtime introspection.
package request

import (
	"encoding/json"
	"time"

	"scoring-api/internal/scoring/field"
	"scoring-api/internal/scoring/schema"
)

// Method names routable through the envelope.
const (
	MethodOnlineScore      = "online_score"
	MethodClientsInterests = "clients_interests"
)

// AdminLogin is the login that switches authentication to the admin token
// and short-circuits score computation.
const AdminLogin = "admin"

var methodRequestSchema = schema.New([]schema.FieldSpec{
	{Name: "account", Required: false, Nullable: true, Validator: field.Char{}},
	{Name: "login", Required: true, Nullable: true, Validator: field.Char{}},
	{Name: "token", Required: true, Nullable: true, Validator: field.Char{}},
	{Name: "arguments", Required: true, Nullable: true, Validator: field.Arguments{}},
	{Name: "method", Required: true, Nullable: false, Validator: field.Char{}},
}, nil)

var onlineScoreSchema = schema.New([]schema.FieldSpec{
	{Name: "first_name", Required: false, Nullable: true, Validator: field.Char{}},
	{Name: "last_name", Required: false, Nullable: true, Validator: field.Char{}},
	{Name: "email", Required: false, Nullable: true, Validator: field.Email{}},
	{Name: "phone", Required: false, Nullable: true, Validator: field.Phone{}},
	{Name: "birthday", Required: false, Nullable: true, Validator: field.BirthDay{}},
	{Name: "gender", Required: false, Nullable: true, Validator: field.Gender{}},
}, &schema.PairConstraint{Pairs: [][]string{
	{"first_name", "last_name"},
	{"birthday", "gender"},
	{"email", "phone"},
}})

var clientsInterestsSchema = schema.New([]schema.FieldSpec{
	{Name: "client_ids", Required: true, Nullable: false, Validator: field.ClientIDs{}},
	{Name: "date", Required: false, Nullable: true, Validator: field.Date{}},
}, nil)

// MethodRequest is the validated outer envelope. Arguments stays an opaque
// mapping until the matched method schema validates it.
type MethodRequest struct {
	Account   string
	Login     string
	Token     string
	Method    string
	Arguments map[string]any
}

// IsAdmin reports whether the caller authenticates as the admin.
func (r *MethodRequest) IsAdmin() bool {
	return r.Login == AdminLogin
}

// ParseMethodRequest validates the envelope body. The returned error, when
// non-nil, is a *schema.ValidationError whose message is user-facing.
func ParseMethodRequest(body map[string]any) (*MethodRequest, error) {
	res, err := methodRequestSchema.Validate(body)
	if err != nil {
		return nil, err
	}
	req := &MethodRequest{
		Account: stringAttr(res, "account"),
		Login:   stringAttr(res, "login"),
		Token:   stringAttr(res, "token"),
		Method:  stringAttr(res, "method"),
	}
	if args, ok := res.Attributes["arguments"].(map[string]any); ok {
		req.Arguments = args
	} else {
		// nullable arguments: treat anything that is not a mapping as empty
		req.Arguments = map[string]any{}
	}
	return req, nil
}

// OnlineScoreArgs is the validated argument set of online_score. Pointer
// and sentinel-free string fields distinguish "absent" via Has.
type OnlineScoreArgs struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Birthday  time.Time
	Gender    int
	res       *schema.Result
}

// ParseOnlineScoreArgs validates online_score arguments, including the
// required-pair constraint.
func ParseOnlineScoreArgs(args map[string]any) (*OnlineScoreArgs, error) {
	res, err := onlineScoreSchema.Validate(args)
	if err != nil {
		return nil, err
	}
	out := &OnlineScoreArgs{
		FirstName: stringAttr(res, "first_name"),
		LastName:  stringAttr(res, "last_name"),
		Email:     stringAttr(res, "email"),
		Phone:     phoneAttr(res),
		Gender:    intAttr(res, "gender"),
		res:       res,
	}
	if s, ok := res.Attributes["birthday"].(string); ok && s != "" {
		// validator already accepted the value
		out.Birthday, _ = time.Parse(field.DateLayout, s)
	}
	return out, nil
}

// Has reports whether the named field was supplied (present, non-null).
func (a *OnlineScoreArgs) Has(name string) bool {
	return a.res.HasField(name)
}

// Context returns the response-context entry for logging: the list of
// supplied fields, in declaration order.
func (a *OnlineScoreArgs) Context() map[string]any {
	var has []string
	for _, name := range onlineScoreSchema.Fields() {
		if a.res.HasField(name) {
			has = append(has, name)
		}
	}
	return map[string]any{"has": has}
}

// ClientsInterestsArgs is the validated argument set of clients_interests.
type ClientsInterestsArgs struct {
	ClientIDs []int64
	Date      string
}

// ParseClientsInterestsArgs validates clients_interests arguments.
func ParseClientsInterestsArgs(args map[string]any) (*ClientsInterestsArgs, error) {
	res, err := clientsInterestsSchema.Validate(args)
	if err != nil {
		return nil, err
	}
	out := &ClientsInterestsArgs{Date: stringAttr(res, "date")}
	if list, ok := res.Attributes["client_ids"].([]any); ok {
		out.ClientIDs = make([]int64, 0, len(list))
		for _, item := range list {
			out.ClientIDs = append(out.ClientIDs, toInt64(item))
		}
	}
	return out, nil
}

// Context returns the response-context entry for logging.
func (a *ClientsInterestsArgs) Context() map[string]any {
	return map[string]any{"nclients": len(a.ClientIDs)}
}

func stringAttr(res *schema.Result, name string) string {
	s, _ := res.Attributes[name].(string)
	return s
}

func intAttr(res *schema.Result, name string) int {
	return int(toInt64(res.Attributes[name]))
}

// phoneAttr normalizes the phone to its text form; the validator accepts
// both string and integer input.
func phoneAttr(res *schema.Result) string {
	switch v := res.Attributes["phone"].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

func toInt64(value any) int64 {
	switch v := value.(type) {
	case json.Number:
		n, _ := v.Int64()
		return n
	case int:
		return int64(v)
	case int64:
		return v
	default:
		return 0
	}
}
