package setup

import "github.com/dentc/officesetup/internal/domain/office"

// StatementTab edits the statement correspondence block and the six
// aging-bucket messages. The 100-character cap is enforced by truncating at
// set time, matching the input behavior, not by rejecting at save.
type StatementTab struct {
	draft *Draft
}

// NewStatementTab creates the Statement editor over the draft.
func NewStatementTab(draft *Draft) *StatementTab {
	return &StatementTab{draft: draft}
}

// SetMessage stores the bucket's message, truncated to the cap.
func (t *StatementTab) SetMessage(bucket office.AgingBucket, text string) {
	if len(text) > office.StatementMessageMaxLen {
		text = text[:office.StatementMessageMaxLen]
	}
	st := t.draft.Value().Statement
	switch bucket {
	case office.BucketGeneral:
		st.Messages.General = text
	case office.BucketCurrent:
		st.Messages.Current = text
	case office.BucketDay30:
		st.Messages.Day30 = text
	case office.BucketDay60:
		st.Messages.Day60 = text
	case office.BucketDay90:
		st.Messages.Day90 = text
	case office.BucketDay120:
		st.Messages.Day120 = text
	}
	t.draft.Apply(Patch{Statement: &st})
}

// Message returns the bucket's current message.
func (t *StatementTab) Message(bucket office.AgingBucket) string {
	m := t.draft.Value().Statement.Messages
	switch bucket {
	case office.BucketGeneral:
		return m.General
	case office.BucketCurrent:
		return m.Current
	case office.BucketDay30:
		return m.Day30
	case office.BucketDay60:
		return m.Day60
	case office.BucketDay90:
		return m.Day90
	case office.BucketDay120:
		return m.Day120
	}
	return ""
}

// Remaining is the live character counter for one bucket.
func (t *StatementTab) Remaining(bucket office.AgingBucket) int {
	return office.StatementMessageMaxLen - len(t.Message(bucket))
}

// SetCorrespondence stores the statement name/address/phone block.
func (t *StatementTab) SetCorrespondence(name, address, phone string) {
	st := t.draft.Value().Statement
	st.CorrespondenceName = name
	st.CorrespondenceAddress = address
	st.CorrespondencePhone = phone
	t.draft.Apply(Patch{Statement: &st})
}
