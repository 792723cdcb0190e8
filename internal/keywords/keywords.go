package keywords

// PolicyPhrases indicate the presence of a privacy or terms document.
// Order matters: scan results preserve this order, and the first matching
// phrase is the one reported for a link.
var PolicyPhrases = []string{
	"privacy policy",
	"terms of service",
	"terms and conditions",
	"terms of use",
	"cookie policy",
	"data policy",
	"user agreement",
	"legal notice",
	"acceptable use",
	"end user license",
}

// RiskPhrases indicate potentially unfavorable contractual language.
// Each distinct match adds one point to the risk score.
//
// Design decision: phrases are kept short and generic rather than tied to
// specific vendors. Substring containment means a phrase like "third
// parties" also fires inside longer clauses, which is intentional: false
// positives are preferred over missed clauses in a heuristic scanner.
var RiskPhrases = []string{
	"sell your data",
	"share your data",
	"sell your personal information",
	"third parties",
	"third-party advertisers",
	"without notice",
	"without your consent",
	"at our sole discretion",
	"at any time for any reason",
	"waive your right",
	"binding arbitration",
	"class action waiver",
	"no refund",
	"non-refundable",
	"perpetual license",
	"irrevocable license",
	"automatic renewal",
	"automatically renew",
	"track your activity",
	"targeted advertising",
	"data brokers",
	"indemnify",
	"as-is without warranty",
	"retain your data indefinitely",
}

// PositivePhrases indicate user-favorable or mitigating language.
// Each distinct match subtracts half a point from the risk score.
var PositivePhrases = []string{
	"opt out",
	"opt-out",
	"with your consent",
	"delete your data",
	"delete your account",
	"data portability",
	"we do not sell",
	"we never sell",
	"right to erasure",
	"right to access",
	"gdpr",
	"ccpa",
	"anonymized",
	"end-to-end encryption",
	"encrypted at rest",
	"you may cancel",
	"30-day notice",
}
