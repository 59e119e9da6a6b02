package worklog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoattend/geoattend-backend-go/internal/domain/settings"
	"github.com/geoattend/geoattend-backend-go/internal/domain/worklog"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/sse"
	"github.com/geoattend/geoattend-backend-go/internal/service/file"
)

type fakeWorkLogRepo struct {
	worklog.WorkLogRepository
	existing  *worklog.WorkLog
	createErr error

	createCalled bool
	created      *worklog.WorkLog
	updated      *worklog.WorkLog
}

func (f *fakeWorkLogRepo) CreateIfAbsent(ctx context.Context, w worklog.WorkLog) (worklog.WorkLog, error) {
	f.createCalled = true
	if f.createErr != nil {
		return worklog.WorkLog{}, f.createErr
	}
	f.created = &w
	return w, nil
}

func (f *fakeWorkLogRepo) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*worklog.WorkLog, error) {
	if f.existing == nil {
		return nil, nil
	}
	cp := *f.existing
	return &cp, nil
}

func (f *fakeWorkLogRepo) Update(ctx context.Context, w worklog.WorkLog) error {
	f.updated = &w
	return nil
}

type fakeSettingsRepo struct {
	settings.SettingsRepository
	cfg settings.OfficeSettings
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (settings.OfficeSettings, error) {
	return f.cfg, nil
}

type fakeFileService struct {
	file.FileService
	uploads []string
	deleted []string
}

func (f *fakeFileService) UploadAttendanceProof(ctx context.Context, employeeID, date string, r io.Reader, filename, clockType string) (string, error) {
	path := fmt.Sprintf("attendance/%s/%s-%s%s", employeeID, date, clockType, filepath.Ext(filename))
	f.uploads = append(f.uploads, path)
	return path, nil
}

func (f *fakeFileService) GetFileURL(ctx context.Context, path string) (string, error) {
	return "/uploads/" + path, nil
}

func (f *fakeFileService) DeleteFile(ctx context.Context, path string) error {
	f.deleted = append(f.deleted, path)
	return nil
}

type stubProof struct {
	*bytes.Reader
}

func (stubProof) Close() error { return nil }

func proofUpload() (multipart.File, *multipart.FileHeader) {
	return stubProof{bytes.NewReader([]byte("jpeg"))}, &multipart.FileHeader{Filename: "proof.jpg"}
}

// Office at Jakarta coordinates with a 150 m fence and a 09:00-17:00 day.
var testOffice = settings.OfficeSettings{
	ID:                   "office",
	Latitude:             -6.2,
	Longitude:            106.816666,
	RadiusMeters:         150,
	WorkStart:            "09:00",
	WorkEnd:              "17:00",
	LateToleranceMinutes: 15,
}

func newTestService(repo *fakeWorkLogRepo, files *fakeFileService, at time.Time) *WorkLogServiceImpl {
	svc := NewWorkLogService(
		nil,
		repo,
		&fakeSettingsRepo{cfg: testOffice},
		nil,
		files,
		nil,
		sse.NewHub(),
		time.UTC,
	).(*WorkLogServiceImpl)
	svc.now = func() time.Time { return at }
	return svc
}

func TestCheckInOnTime(t *testing.T) {
	repo := &fakeWorkLogRepo{}
	svc := newTestService(repo, &fakeFileService{}, time.Date(2026, 3, 2, 9, 10, 0, 0, time.UTC))

	resp, err := svc.CheckIn(context.Background(), worklog.CheckInRequest{
		EmployeeID: "e1",
		Latitude:   -6.2,
		Longitude:  106.816666,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.created)
	assert.Equal(t, worklog.StatusOnTime, repo.created.Status)
	assert.Equal(t, "2026-03-02", repo.created.Date)
	require.NotNil(t, resp.DistanceMeters)
	assert.InDelta(t, 0, *resp.DistanceMeters, 1)
}

func TestCheckInOutsideRadiusRejected(t *testing.T) {
	repo := &fakeWorkLogRepo{}
	files := &fakeFileService{}
	svc := newTestService(repo, files, time.Date(2026, 3, 2, 9, 10, 0, 0, time.UTC))

	f, fh := proofUpload()
	_, err := svc.CheckIn(context.Background(), worklog.CheckInRequest{
		EmployeeID: "e1",
		Latitude:   -6.21,
		Longitude:  106.816666,
		File:       f,
		FileHeader: fh,
	})

	assert.ErrorIs(t, err, worklog.ErrOutsideAllowedRadius)
	assert.False(t, repo.createCalled, "out-of-range attempt must not write a record")
	assert.Empty(t, files.uploads, "out-of-range attempt must not store a photo")
}

func TestCheckInDuplicateDay(t *testing.T) {
	repo := &fakeWorkLogRepo{createErr: worklog.ErrAlreadyRecorded}
	files := &fakeFileService{}
	svc := newTestService(repo, files, time.Date(2026, 3, 2, 9, 10, 0, 0, time.UTC))

	f, fh := proofUpload()
	_, err := svc.CheckIn(context.Background(), worklog.CheckInRequest{
		EmployeeID: "e1",
		Latitude:   -6.2,
		Longitude:  106.816666,
		File:       f,
		FileHeader: fh,
	})

	assert.ErrorIs(t, err, worklog.ErrAlreadyRecorded)
	require.Len(t, files.uploads, 1)
	assert.Equal(t, files.uploads, files.deleted, "the stored photo must be removed when the record is rejected")
}

func TestCheckOutEarlyAdvisory(t *testing.T) {
	checkIn := time.Date(2026, 3, 2, 9, 5, 0, 0, time.UTC)

	cases := []struct {
		name  string
		at    time.Time
		early bool
	}{
		{"before work end", time.Date(2026, 3, 2, 16, 0, 0, 0, time.UTC), true},
		{"after work end", time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeWorkLogRepo{existing: &worklog.WorkLog{
				ID:                  "wl1",
				EmployeeID:          "e1",
				Date:                "2026-03-02",
				Status:              worklog.StatusOnTime,
				CheckInTime:         &checkIn,
				LeaveApprovalStatus: worklog.ApprovalNA,
			}}
			svc := newTestService(repo, &fakeFileService{}, tc.at)

			resp, err := svc.CheckOut(context.Background(), worklog.CheckOutRequest{
				EmployeeID: "e1",
				Latitude:   -6.2,
				Longitude:  106.816666,
			})
			require.NoError(t, err)

			require.NotNil(t, resp.EarlyCheckOut)
			assert.Equal(t, tc.early, *resp.EarlyCheckOut)
			require.NotNil(t, repo.updated)
			assert.NotNil(t, repo.updated.CheckOutTime)
		})
	}
}

func TestCheckOutAlreadyCheckedOut(t *testing.T) {
	checkIn := time.Date(2026, 3, 2, 9, 5, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)

	repo := &fakeWorkLogRepo{existing: &worklog.WorkLog{
		ID:                  "wl1",
		EmployeeID:          "e1",
		Date:                "2026-03-02",
		Status:              worklog.StatusOnTime,
		CheckInTime:         &checkIn,
		CheckOutTime:        &checkOut,
		LeaveApprovalStatus: worklog.ApprovalNA,
	}}
	files := &fakeFileService{}
	svc := newTestService(repo, files, time.Date(2026, 3, 2, 16, 30, 0, 0, time.UTC))

	f, fh := proofUpload()
	_, err := svc.CheckOut(context.Background(), worklog.CheckOutRequest{
		EmployeeID: "e1",
		Latitude:   -6.2,
		Longitude:  106.816666,
		File:       f,
		FileHeader: fh,
	})

	assert.ErrorIs(t, err, worklog.ErrAlreadyCheckedOut)
	require.Len(t, files.uploads, 1)
	assert.Equal(t, files.uploads, files.deleted, "the stored photo must be removed when the record is rejected")
}
