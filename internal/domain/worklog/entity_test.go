package worklog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkedInLog(in time.Time) WorkLog {
	t := in
	return WorkLog{
		ID:                  "wl-1",
		EmployeeID:          "emp-1",
		Date:                in.Format(DateFormat),
		Status:              StatusOnTime,
		CheckInTime:         &t,
		LeaveApprovalStatus: ApprovalNA,
	}
}

func pendingLeaveLog(leaveType string) WorkLog {
	note := "family matter"
	return WorkLog{
		ID:                  "wl-2",
		EmployeeID:          "emp-2",
		Date:                "2025-03-10",
		Status:              leaveType,
		LeaveNote:           &note,
		LeaveApprovalStatus: ApprovalPending,
	}
}

func TestWorkLog_State(t *testing.T) {
	in := time.Date(2025, 3, 10, 8, 10, 0, 0, time.UTC)

	w := checkedInLog(in)
	assert.Equal(t, StateCheckedIn, w.State())

	require.NoError(t, w.ApplyCheckOut(in.Add(9*time.Hour), -6.9309, 107.6204, "photo.jpg"))
	assert.Equal(t, StateCheckedOut, w.State())

	leave := pendingLeaveLog(StatusSick)
	assert.Equal(t, StateLeavePending, leave.State())
	require.NoError(t, leave.ApplyLeaveDecision(ApprovalApproved))
	assert.Equal(t, StateLeaveApproved, leave.State())
}

func TestApplyCheckOut(t *testing.T) {
	in := time.Date(2025, 3, 10, 8, 10, 0, 0, time.UTC)
	out := time.Date(2025, 3, 10, 17, 5, 0, 0, time.UTC)

	w := checkedInLog(in)
	require.NoError(t, w.ApplyCheckOut(out, -6.9309, 107.6204, "out.jpg"))

	// 8h55m = 8.9166... rounds to 8.92
	assert.Equal(t, 8.92, w.DurationHours)
	assert.Equal(t, out, *w.CheckOutTime)
	assert.Equal(t, "out.jpg", *w.CheckOutPhotoURL)
}

func TestApplyCheckOut_Preconditions(t *testing.T) {
	in := time.Date(2025, 3, 10, 8, 10, 0, 0, time.UTC)

	t.Run("before check-in", func(t *testing.T) {
		w := checkedInLog(in)
		err := w.ApplyCheckOut(in.Add(-time.Minute), 0, 0, "x.jpg")
		assert.ErrorIs(t, err, ErrInvalidTimeOrder)
		assert.Nil(t, w.CheckOutTime)
	})

	t.Run("already checked out", func(t *testing.T) {
		w := checkedInLog(in)
		require.NoError(t, w.ApplyCheckOut(in.Add(8*time.Hour), 0, 0, "x.jpg"))
		err := w.ApplyCheckOut(in.Add(9*time.Hour), 0, 0, "y.jpg")
		assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
	})

	t.Run("leave record", func(t *testing.T) {
		w := pendingLeaveLog(StatusOnLeave)
		err := w.ApplyCheckOut(in, 0, 0, "x.jpg")
		assert.ErrorIs(t, err, ErrNotCheckedIn)
	})

	t.Run("same instant is allowed", func(t *testing.T) {
		w := checkedInLog(in)
		require.NoError(t, w.ApplyCheckOut(in, 0, 0, "x.jpg"))
		assert.Equal(t, 0.0, w.DurationHours)
	})
}

func TestApplyCorrection(t *testing.T) {
	in := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	out := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	w := checkedInLog(in)
	photo := "stale.jpg"
	w.CheckOutPhotoURL = &photo // must be cleared by correction

	require.NoError(t, w.ApplyCorrection(out, "Employee forgot to check-out."))

	assert.Equal(t, 9.0, w.DurationHours)
	assert.Equal(t, "Employee forgot to check-out.", *w.CorrectionNote)
	assert.Nil(t, w.CheckOutPhotoURL)
	assert.Equal(t, StateCheckedOut, w.State())
}

func TestApplyCorrection_DefaultNote(t *testing.T) {
	in := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	w := checkedInLog(in)

	require.NoError(t, w.ApplyCorrection(in.Add(9*time.Hour), ""))
	assert.Equal(t, DefaultCorrectionNote, *w.CorrectionNote)
}

func TestApplyCorrection_InvalidTimeOrder(t *testing.T) {
	in := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	w := checkedInLog(in)

	err := w.ApplyCorrection(in.Add(-time.Hour), "typo")
	assert.ErrorIs(t, err, ErrInvalidTimeOrder)
}

func TestApplyLeaveDecision(t *testing.T) {
	t.Run("approve keeps status", func(t *testing.T) {
		w := pendingLeaveLog(StatusOnLeave)
		require.NoError(t, w.ApplyLeaveDecision(ApprovalApproved))
		assert.Equal(t, StatusOnLeave, w.Status)
		assert.Equal(t, ApprovalApproved, w.LeaveApprovalStatus)
	})

	// Rejection forces Absent regardless of the original leave type
	for _, leaveType := range []string{StatusOnLeave, StatusSick} {
		t.Run("reject "+leaveType+" forces absent", func(t *testing.T) {
			w := pendingLeaveLog(leaveType)
			require.NoError(t, w.ApplyLeaveDecision(ApprovalRejected))
			assert.Equal(t, StatusAbsent, w.Status)
			assert.Equal(t, ApprovalRejected, w.LeaveApprovalStatus)
		})
	}

	t.Run("already processed", func(t *testing.T) {
		w := pendingLeaveLog(StatusSick)
		require.NoError(t, w.ApplyLeaveDecision(ApprovalApproved))
		err := w.ApplyLeaveDecision(ApprovalRejected)
		assert.ErrorIs(t, err, ErrLeaveAlreadyProcessed)
	})

	t.Run("not a leave record", func(t *testing.T) {
		w := checkedInLog(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))
		err := w.ApplyLeaveDecision(ApprovalApproved)
		assert.ErrorIs(t, err, ErrNotLeaveRequest)
	})

	t.Run("invalid decision", func(t *testing.T) {
		w := pendingLeaveLog(StatusSick)
		err := w.ApplyLeaveDecision("maybe")
		assert.ErrorIs(t, err, ErrInvalidDecision)
	})
}
