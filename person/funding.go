package person

import (
	"regexp"
	"strings"
)

// Funding is a parsed funding token:
//
//	funder ["[" ror "]"] [" > " [award] ["[" number "]"] [" " url]]
type Funding struct {
	Funder      string
	RORID       string
	Award       string
	AwardNumber string
	URL         string
}

// Investigator is a parsed investigator token:
//
//	person? (" (" agency ("; " agency)* ")")? (" {" notes "}")?
type Investigator struct {
	Person   *Parsed
	Agencies []string
	Notes    string
}

var rorRegex = regexp.MustCompile(`^0[0-9a-hjkmnp-tv-z]{6}[0-9]{2}$`)

// ParseFunding parses a funding token.
func ParseFunding(token string) (*Funding, error) {
	if token != strings.TrimSpace(token) || token == "" {
		return nil, &ParseError{Token: token, Reason: "empty or surrounded by whitespace"}
	}
	f := &Funding{}

	funder, award, hasAward := strings.Cut(token, " > ")
	f.Funder, f.RORID = cutBracketSuffix(funder)
	if f.Funder == "" {
		return nil, &ParseError{Token: token, Reason: "missing funder"}
	}
	if f.RORID != "" && !rorRegex.MatchString(f.RORID) {
		return nil, &ParseError{Token: token, Reason: "invalid ROR id " + f.RORID}
	}
	if !hasAward {
		return f, nil
	}

	if i := strings.LastIndex(award, " http"); i >= 0 && !strings.Contains(award[i+1:], " ") {
		f.URL = award[i+1:]
		award = award[:i]
	} else if strings.HasPrefix(award, "http") && !strings.Contains(award, " ") {
		f.URL = award
		award = ""
	}
	f.Award, f.AwardNumber = cutBracketSuffix(award)
	if f.Award == "" && f.AwardNumber == "" && f.URL == "" {
		return nil, &ParseError{Token: token, Reason: "empty award clause"}
	}
	return f, nil
}

// cutBracketSuffix splits a trailing " [value]" (or a bare "[value]") from
// a clause.
func cutBracketSuffix(s string) (string, string) {
	if !strings.HasSuffix(s, "]") {
		return s, ""
	}
	i := strings.LastIndex(s, "[")
	if i < 0 {
		return s, ""
	}
	return strings.TrimSuffix(s[:i], " "), s[i+1 : len(s)-1]
}

// ParseInvestigator parses an investigator token. The person part is
// optional; a parenthesized suffix that is neither an ORCID nor an email is
// the agency list.
func ParseInvestigator(token string) (*Investigator, error) {
	if token != strings.TrimSpace(token) || token == "" {
		return nil, &ParseError{Token: token, Reason: "empty or surrounded by whitespace"}
	}
	inv := &Investigator{}
	rest := token

	if strings.HasSuffix(rest, "}") {
		i := strings.LastIndex(rest, " {")
		if i < 0 {
			return nil, &ParseError{Token: token, Reason: "malformed notes braces"}
		}
		inv.Notes = rest[i+2 : len(rest)-1]
		rest = rest[:i]
	}

	if strings.HasSuffix(rest, ")") {
		var inner, before string
		if i := strings.LastIndex(rest, " ("); i >= 0 {
			inner, before = rest[i+2:len(rest)-1], rest[:i]
		} else if strings.HasPrefix(rest, "(") {
			inner, before = rest[1:len(rest)-1], ""
		} else {
			return nil, &ParseError{Token: token, Reason: "malformed agency parentheses"}
		}
		if !orcidRegex.MatchString(inner) && !emailRegex.MatchString(inner) {
			for _, agency := range strings.Split(inner, "; ") {
				if agency == "" {
					return nil, &ParseError{Token: token, Reason: "empty agency"}
				}
				inv.Agencies = append(inv.Agencies, agency)
			}
			rest = before
		}
	}

	if rest != "" {
		p, err := ParsePerson(rest)
		if err != nil {
			return nil, err
		}
		inv.Person = p
	}
	if inv.Person == nil && len(inv.Agencies) == 0 && inv.Notes == "" {
		return nil, &ParseError{Token: token, Reason: "empty investigator"}
	}
	return inv, nil
}
