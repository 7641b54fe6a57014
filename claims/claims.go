// Package claims derives grants from OAuth2/OIDC token claims, the shape a
// JWT verifier hands over after validating a token.
package claims

import (
	"errors"
	"fmt"
	"strings"

	"github.com/axent-pl/security"
	"github.com/axent-pl/security/abac"
	"github.com/axent-pl/security/logx"
	"github.com/golang-jwt/jwt/v5"
)

var ErrUnsupportedClaims = errors.New("unsupported claims")

// Scopes builds scope grants from the "scope" claim (space-delimited string)
// and the "scp" claim (string array). Missing or malformed claims yield no
// grants, never an error.
func Scopes(c jwt.MapClaims) []security.Grant {
	var names []string
	if raw, ok := c["scope"]; ok {
		if s, ok := raw.(string); ok {
			names = append(names, strings.Fields(s)...)
		} else {
			logx.L().Debug("skipping scope claim of unexpected type", "type", fmt.Sprintf("%T", raw))
		}
	}
	if raw, ok := c["scp"]; ok {
		names = append(names, stringValues(raw, "scp")...)
	}

	grants := make([]security.Grant, 0, len(names))
	for _, name := range names {
		grants = append(grants, security.NewGrant(security.TypeScope, name))
	}
	return grants
}

// Roles builds role grants from the "roles" claim and the Keycloak-style
// "realm_access.roles" claim. Missing or malformed claims yield no grants,
// never an error.
func Roles(c jwt.MapClaims) []security.Role {
	var names []string
	if raw, ok := c["roles"]; ok {
		names = append(names, stringValues(raw, "roles")...)
	}
	if _, ok := c["realm_access"]; ok {
		vals, err := abac.Query(abac.NewAttributesFromMap(c), ".realm_access.roles[*]")
		if err == nil {
			for _, v := range vals {
				if s, ok := v.(string); ok {
					names = append(names, s)
				} else {
					logx.L().Debug("skipping realm_access role of unexpected type", "type", fmt.Sprintf("%T", v))
				}
			}
		}
	}

	roles := make([]security.Role, 0, len(names))
	for _, name := range names {
		roles = append(roles, security.NewRole(name))
	}
	return roles
}

// Grants builds all grants carried by the claims: scopes followed by roles,
// deduplicated by their type:name identity.
func Grants(c jwt.MapClaims) []security.Grant {
	grants := Scopes(c)
	for _, r := range Roles(c) {
		grants = append(grants, r.Grant)
	}

	seen := make(map[string]struct{}, len(grants))
	out := grants[:0]
	for _, g := range grants {
		key := g.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, g)
	}
	return out
}

// FromToken builds all grants carried by a parsed token. The token's claims
// must be jwt.MapClaims, the default for tokens parsed without a claims
// target.
func FromToken(t *jwt.Token) ([]security.Grant, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: token is nil", ErrUnsupportedClaims)
	}
	mc, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedClaims, t.Claims)
	}
	return Grants(mc), nil
}

// stringValues extracts the string entries of an array-valued claim,
// skipping anything else.
func stringValues(raw any, claim string) []string {
	var out []string
	switch vals := raw.(type) {
	case []string:
		out = append(out, vals...)
	case []any:
		for _, v := range vals {
			if s, ok := v.(string); ok {
				out = append(out, s)
			} else {
				logx.L().Debug("skipping claim entry of unexpected type", "claim", claim, "type", fmt.Sprintf("%T", v))
			}
		}
	default:
		logx.L().Debug("skipping claim of unexpected type", "claim", claim, "type", fmt.Sprintf("%T", raw))
	}
	return out
}
