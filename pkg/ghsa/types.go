package ghsa

// Response is the body returned by the GraphQL endpoint for the
// securityAdvisories query. The json tags double as the query selection set,
// see BuildQuery.
//
// Pointer fields tell a missing or null value apart from an empty one.
type Response struct {
	Data   *Data          `json:"data"`
	Errors []GraphQLError `json:"errors,omitempty"`
}

type GraphQLError struct {
	Type    string `json:"type,omitempty"`
	Message string `json:"message"`
}

type Data struct {
	SecurityAdvisories *SecurityAdvisories `json:"securityAdvisories"`
}

// SecurityAdvisories is a connection of advisories.
type SecurityAdvisories struct {
	Edges []Edge `json:"edges"`
}

type Edge struct {
	Node *Node `json:"node"`
}

type Node struct {
	// The GitHub Security Advisory ID, e.g. GHSA-xxxx-yyyy-zzzz
	GhsaID *string `json:"ghsaId"`

	// A short plaintext summary of the advisory
	Summary *string `json:"summary"`

	// LOW, MODERATE, HIGH or CRITICAL
	Severity *string `json:"severity"`

	CVSS *CVSS `json:"cvss"`
}

type CVSS struct {
	// null when the advisory has no CVSS assessment
	VectorString *string `json:"vectorString"`
}
