package rpc

import "time"

// SystemActor identifies the machine and user issuing a request.
type SystemActor struct {
	Hostname string `json:"hostname"`
	Username string `json:"username"`
}

// GetHostname returns the hostname or "" for a nil actor.
func (a *SystemActor) GetHostname() string {
	if a == nil {
		return ""
	}

	return a.Hostname
}

// GetUsername returns the username or "" for a nil actor.
func (a *SystemActor) GetUsername() string {
	if a == nil {
		return ""
	}

	return a.Username
}

// Alarm is the wire form of a scheduled or ringing alarm.
type Alarm struct {
	ID            string    `json:"id"`
	Hours         int32     `json:"hours"`
	Minutes       int32     `json:"minutes"`
	Time          string    `json:"time"`
	TriggerSecond int32     `json:"trigger_second"`
	IsRinging     bool      `json:"is_ringing"`
	CreatedAt     time.Time `json:"created_at"`
}

// GetID returns the alarm ID or "" for a nil alarm.
func (a *Alarm) GetID() string {
	if a == nil {
		return ""
	}

	return a.ID
}

// GetTime returns the HH:MM form or "" for a nil alarm.
func (a *Alarm) GetTime() string {
	if a == nil {
		return ""
	}

	return a.Time
}

// GetIsRinging reports the ringing flag, false for a nil alarm.
func (a *Alarm) GetIsRinging() bool {
	return a != nil && a.IsRinging
}

// AddAlarmRequest schedules an alarm at Hours:Minutes.
type AddAlarmRequest struct {
	Actor   *SystemActor `json:"actor"`
	Hours   int32        `json:"hours"`
	Minutes int32        `json:"minutes"`
}

// AlarmResponse carries a single alarm.
type AlarmResponse struct {
	Alarm *Alarm `json:"alarm"`
}

// GetAlarm returns the alarm or nil.
func (r *AlarmResponse) GetAlarm() *Alarm {
	if r == nil {
		return nil
	}

	return r.Alarm
}

// CancelAlarmRequest removes the alarm with the given ID.
type CancelAlarmRequest struct {
	Actor *SystemActor `json:"actor"`
	ID    string       `json:"id"`
}

// CancelAlarmResponse reports whether anything was removed.
type CancelAlarmResponse struct {
	Removed bool   `json:"removed"`
	Alarm   *Alarm `json:"alarm,omitempty"`
}

// GetRemoved reports whether an alarm was removed.
func (r *CancelAlarmResponse) GetRemoved() bool {
	return r != nil && r.Removed
}

// GetAlarm returns the removed alarm or nil.
func (r *CancelAlarmResponse) GetAlarm() *Alarm {
	if r == nil {
		return nil
	}

	return r.Alarm
}

// ListAlarmsRequest asks for the ordered alarm list.
type ListAlarmsRequest struct {
	Actor *SystemActor `json:"actor,omitempty"`
}

// ListAlarmsResponse is the ordered alarm list and the server's clock reading.
type ListAlarmsResponse struct {
	NowSecond int32    `json:"now_second"`
	Alarms    []*Alarm `json:"alarms"`
}

// GetAlarms returns the alarms or nil.
func (r *ListAlarmsResponse) GetAlarms() []*Alarm {
	if r == nil {
		return nil
	}

	return r.Alarms
}

// NextAlarmRequest asks for the upcoming alarm.
type NextAlarmRequest struct {
	Actor *SystemActor `json:"actor,omitempty"`
}

// NextAlarmResponse is the upcoming alarm, if any.
type NextAlarmResponse struct {
	Found           bool   `json:"found"`
	Alarm           *Alarm `json:"alarm,omitempty"`
	TimeLeftSeconds int64  `json:"time_left_seconds"`
}

// GetFound reports whether an upcoming alarm exists.
func (r *NextAlarmResponse) GetFound() bool {
	return r != nil && r.Found
}

// GetAlarm returns the upcoming alarm or nil.
func (r *NextAlarmResponse) GetAlarm() *Alarm {
	if r == nil {
		return nil
	}

	return r.Alarm
}

// TimeLeft returns the time until the upcoming alarm.
func (r *NextAlarmResponse) TimeLeft() time.Duration {
	if r == nil {
		return 0
	}

	return time.Duration(r.TimeLeftSeconds) * time.Second
}
