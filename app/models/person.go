package models

// Spreadsheet column names used by the roster file. The file is authored in
// Vietnamese and the exported reports must carry the same headers, so the
// literal names are kept as constants instead of being translated.
const (
	ColTT         = "TT"
	ColName       = "Họ và tên"
	ColRole       = "Chức vụ"
	ColUnit       = "Đơn vị"
	ColAttendance = "Điểm danh"
)

// Person is one roster row. TT is the stable ordinal that joins a person
// across the spreadsheet, the persisted attendance records, task membership
// and survey results. Extra carries every spreadsheet column that is not one
// of the known ones, unchanged, so unknown columns survive a round trip.
//
// Absent and Reason are client-local state: they never come from the
// spreadsheet and default to false/"" on every fresh load.
type Person struct {
	TT         int
	Name       string
	Role       string
	Unit       string
	Attendance bool
	Extra      map[string]string

	Absent bool
	Reason string
}

// Fields returns the person in the spreadsheet shape: every original column
// plus the attendance flag. This is what the raw personnel endpoints serve.
func (p *Person) Fields() map[string]interface{} {
	m := make(map[string]interface{}, len(p.Extra)+5)
	for k, v := range p.Extra {
		m[k] = v
	}
	m[ColTT] = p.TT
	m[ColName] = p.Name
	m[ColRole] = p.Role
	m[ColUnit] = p.Unit
	m[ColAttendance] = p.Attendance
	return m
}

// RosterFields is Fields plus the client-local absence state, matching the
// merged records the manager views work with.
func (p *Person) RosterFields() map[string]interface{} {
	m := p.Fields()
	m["_present"] = p.Absent
	m["_reason"] = p.Reason
	return m
}

// AttendanceRecord is the persisted per-person attendance state, keyed by TT
// and overwritten wholesale on every save. The "present" key is historical:
// true means the person is marked absent.
type AttendanceRecord struct {
	TT      int    `json:"tt"`
	Present bool   `json:"present"`
	Reason  string `json:"reason"`
}
