package policy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/casbin/casbin/v2/model"
)

const modelTemplate = `
[request_definition]
r = sub, act

[policy_definition]
p = sub, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = %s
`

const baseMatcher = "g(r.sub, p.sub) && r.act == p.act"

const (
	userPrefix = "user:"
	rolePrefix = "role:"
)

func userKey(name string) string {
	return userPrefix + name
}

func roleKey(name string) string {
	return rolePrefix + name
}

func matcher(bypass string) string {
	if bypass == "" {
		return baseMatcher
	}
	return baseMatcher + " || r.sub == " + strconv.Quote(userKey(bypass))
}

func newModel(bypass string) (model.Model, error) {
	if strings.ContainsAny(bypass, "\"\\\n") {
		return nil, fmt.Errorf("invalid bypass subject: %q", bypass)
	}
	return model.NewModelFromString(fmt.Sprintf(modelTemplate, matcher(bypass)))
}
