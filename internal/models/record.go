package models

// Attribute keys every record carries. The schema template may define more.
const (
	KeyUsername = "username"
	KeyPassword = "password"
)

// Record is a single user's attribute set: a flat attribute-name to value
// mapping. The schema template defines the required keys; ad-hoc keys are
// tolerated and preserved across load/save cycles.
type Record map[string]string

// NewRecord creates a record holding only credentials. The schema template
// fills in the remaining attributes when the record enters the store.
// Note: the password is expected to already be hashed by the caller.
func NewRecord(username string, hashedPassword string) Record {
	return Record{
		KeyUsername: username,
		KeyPassword: hashedPassword,
	}
}

// Username returns the record's unique identifier.
func (r Record) Username() string {
	return r[KeyUsername]
}

// Password returns the stored password hash.
func (r Record) Password() string {
	return r[KeyPassword]
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	clone := make(Record, len(r))
	for k, v := range r {
		clone[k] = v
	}
	return clone
}

// Merge overwrites the record's attributes with every key present in patch.
// No key filtering happens here; callers that must protect username or
// password strip them from the patch first.
func (r Record) Merge(patch Record) {
	for k, v := range patch {
		r[k] = v
	}
}
