package model

// SubscriberList is the mailing list stored as a single document.
// Membership is case-sensitive exact match, matching the original list.
type SubscriberList struct {
	EmailList []string `json:"emailList" firestore:"emailList"`
}

// Contains reports whether the email is already on the list
func (l *SubscriberList) Contains(email string) bool {
	for _, e := range l.EmailList {
		if e == email {
			return true
		}
	}
	return false
}

// Append adds the email to the end of the list
func (l *SubscriberList) Append(email string) {
	l.EmailList = append(l.EmailList, email)
}

// Feedback is a user-submitted feedback message with a reply address
type Feedback struct {
	Email    string `json:"email"`
	Feedback string `json:"feedback"`
}
