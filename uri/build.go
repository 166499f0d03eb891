package uri

import "github.com/ghettovoice/gouri/internal/util"

// Part is a component with its value.
type Part struct {
	Comp  Component
	Value string
}

// Build renders the given components as URI text.
// Later parts override earlier parts of the same component; parts with
// out-of-range components are ignored.
//
// Components are emitted in enumeration order with these rules:
//   - scheme is followed by ":" and, if any of host, user, password, port or
//     userinfo is given, by "//";
//   - authority is emitted verbatim and hides host, user, password, port and userinfo;
//   - userinfo is emitted only without user and password;
//   - an empty user is skipped when userinfo is given;
//   - password and port are prefixed with ":", query with "?", fragment with "#",
//     and are skipped when empty;
//   - non-empty credentials are closed with "@", before the host if there is
//     one.
func Build(parts ...Part) string {
	var cs compSet
	cs.overlay(parts)
	return cs.build()
}

// Rebuild renders the components of base overlaid with parts.
// A raw authority is dropped when the merged set has any authority part and
// parts carry no authority of their own, so edited parts are never hidden by
// stale raw text. Likewise a raw userinfo is dropped when user or password is
// present and parts carry no userinfo. A userinfo given without user and
// password replaces those of base.
func Rebuild(base *View, parts ...Part) string {
	cs := rebuildSet(base, parts)
	return cs.build()
}

func rebuildSet(base *View, parts []Part) compSet {
	var edit, cs compSet
	edit.overlay(parts)
	for c, s := range base.All() {
		cs.set(c, s)
	}
	if edit.has(Userinfo) && !edit.has(User) && !edit.has(Password) {
		cs.mask.Clear(User)
		cs.mask.Clear(Password)
	}
	cs.merge(&edit)
	if cs.mask.AnyAuthority() && !edit.has(Authority) {
		cs.mask.Clear(Authority)
	}
	if (cs.has(User) || cs.has(Password)) && !edit.has(Userinfo) {
		cs.mask.Clear(Userinfo)
	}
	return cs
}

type compSet struct {
	vals [CountOf]string
	mask Presence
}

func (cs *compSet) set(c Component, v string) {
	cs.vals[c] = v
	cs.mask.Set(c)
}

func (cs *compSet) overlay(parts []Part) {
	for _, p := range parts {
		if p.Comp.IsValid() {
			cs.set(p.Comp, p.Value)
		}
	}
}

func (cs *compSet) merge(o *compSet) {
	for c := range CountOf {
		if o.has(c) {
			cs.set(c, o.vals[c])
		}
	}
}

func (cs *compSet) has(c Component) bool { return cs.mask.Test(c) }

func (cs *compSet) build() string {
	if cs.mask == 0 {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	var done Presence
	emitted := func(c Component) bool { return done.Test(c) && cs.vals[c] != "" }
	// at closes emitted credentials with "@" once, even without a host.
	var atDone bool
	at := func() {
		if !atDone && (emitted(User) || emitted(Password) || emitted(Userinfo)) {
			sb.WriteByte('@')
		}
		atDone = true
	}
	for c := range CountOf {
		if !cs.has(c) || done.Test(c) {
			continue
		}
		v := cs.vals[c]
		switch c {
		case Scheme:
			sb.WriteString(v)
			sb.WriteByte(':')
			if cs.mask.AnyAuthority() {
				sb.WriteString("//")
			}
		case Authority:
			if !cs.mask.AnyAuthority() {
				sb.WriteString("//")
			}
			sb.WriteString(v)
		case Userinfo:
			if cs.has(Authority) || cs.has(User) || cs.has(Password) {
				continue
			}
			sb.WriteString(v)
		case User:
			if cs.has(Authority) || v == "" && cs.has(Userinfo) {
				continue
			}
			sb.WriteString(v)
		case Password:
			if cs.has(Authority) || cs.has(Userinfo) {
				continue
			}
			if v != "" {
				sb.WriteByte(':')
				sb.WriteString(v)
			}
		case Host:
			if cs.has(Authority) {
				continue
			}
			at()
			sb.WriteString(v)
		case Port:
			if cs.has(Authority) {
				continue
			}
			at()
			if v != "" {
				sb.WriteByte(':')
				sb.WriteString(v)
			}
		case Path:
			at()
			sb.WriteString(v)
		case Query:
			at()
			if v != "" {
				sb.WriteByte('?')
				sb.WriteString(v)
			}
		case Fragment:
			at()
			if v != "" {
				sb.WriteByte('#')
				sb.WriteString(v)
			}
		}
		done.Set(c)
	}
	at()
	return sb.String()
}
