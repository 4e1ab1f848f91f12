package message

import "time"

const TimeFormatString = "2006-01-02 15:04:05"

type TimeStamp string

func NewTimeStamp(t time.Time) TimeStamp {
	return TimeStamp(t.Format(TimeFormatString))
}

// Time parses the stamp back; a malformed stamp yields the zero time.
func (ts TimeStamp) Time() time.Time {
	parsedTime, err := time.Parse(TimeFormatString, string(ts))
	if err != nil {
		return time.Time{}
	}
	return parsedTime
}
