package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service,JobBoardService

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"casebook/internal/hiring/handler/mocks"
	"casebook/internal/hiring/models"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	service   *mocks.MockService
	router    chi.Router
	caller    id.UserID
	requestID id.HiringRequestID
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)
	s.router = chi.NewRouter()
	New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil)), nil, testutil.NewTokenValidator()).Register(s.router)
	s.caller = id.UserID(uuid.New())
	s.requestID = id.HiringRequestID(uuid.New())
}

func (s *HandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerSuite) path(suffix string) string {
	return "/hiring-requests/" + s.requestID.String() + suffix
}

func (s *HandlerSuite) TestCreate() {
	investigator, caseID := id.UserID(uuid.New()), id.CaseID(uuid.New())
	body := models.CreateRequest{
		InvestigatorID: investigator.String(),
		CaseID:         caseID.String(),
		Terms:          models.Terms{Title: "Shadow the courier"},
	}

	s.Run("created", func() {
		s.service.EXPECT().Create(gomock.Any(), s.caller, investigator, caseID, models.Terms{Title: "Shadow the courier"}).
			Return(&models.HiringRequest{ID: s.requestID, Status: models.StatusPending}, nil)
		req := testutil.AsUser(testutil.NewJSONRequest(s.T(), http.MethodPost, "/hiring-requests", body), s.caller)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusCreated)
		testutil.AssertJSONContains(s.T(), rr, "status", "PENDING")
	})

	s.Run("duplicate", func() {
		s.service.EXPECT().Create(gomock.Any(), s.caller, investigator, caseID, gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeDuplicateRequest, "an open hiring request already exists"))
		req := testutil.AsUser(testutil.NewJSONRequest(s.T(), http.MethodPost, "/hiring-requests", body), s.caller)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, "duplicate_request")
	})

	s.Run("investigator not hireable", func() {
		s.service.EXPECT().Create(gomock.Any(), s.caller, investigator, caseID, gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeNotEligible, "investigator is not available for hire"))
		req := testutil.AsUser(testutil.NewJSONRequest(s.T(), http.MethodPost, "/hiring-requests", body), s.caller)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnprocessableEntity, "not_eligible")
	})

	s.Run("malformed investigator id", func() {
		bad := body
		bad.InvestigatorID = "nobody"
		req := testutil.AsUser(testutil.NewJSONRequest(s.T(), http.MethodPost, "/hiring-requests", bad), s.caller)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})

	s.Run("unauthenticated", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/hiring-requests", body)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusUnauthorized)
	})
}

func (s *HandlerSuite) TestRespond() {
	s.Run("investigator accepts", func() {
		gomock.InOrder(
			s.service.EXPECT().AuthorizeInvestigator(gomock.Any(), s.requestID, s.caller).Return(nil),
			s.service.EXPECT().Accept(gomock.Any(), s.requestID, "on it").
				Return(&models.HiringRequest{ID: s.requestID, Status: models.StatusAccepted}, nil),
		)
		req := testutil.AsUser(testutil.NewJSONRequest(s.T(), http.MethodPost, s.path("/accept"), models.RespondRequest{Response: "on it"}), s.caller)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		testutil.AssertJSONContains(s.T(), rr, "status", "ACCEPTED")
	})

	s.Run("organization cannot accept on the investigator's behalf", func() {
		s.service.EXPECT().AuthorizeInvestigator(gomock.Any(), s.requestID, s.caller).
			Return(dErrors.New(dErrors.CodeForbidden, "only the invited investigator can respond"))
		req := testutil.AsUser(testutil.NewRequest(s.T(), http.MethodPost, s.path("/accept")), s.caller)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusForbidden, "forbidden")
	})

	s.Run("reject after decision", func() {
		s.service.EXPECT().AuthorizeInvestigator(gomock.Any(), s.requestID, s.caller).Return(nil)
		s.service.EXPECT().Reject(gomock.Any(), s.requestID, "").
			Return(nil, dErrors.New(dErrors.CodeInvalidState, "cannot reject an accepted hiring request"))
		req := testutil.AsUser(testutil.NewRequest(s.T(), http.MethodPost, s.path("/reject")), s.caller)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, "invalid_state")
	})
}

func (s *HandlerSuite) TestContractLifecycle() {
	s.service.EXPECT().AuthorizeInvestigator(gomock.Any(), s.requestID, s.caller).Return(nil)
	s.service.EXPECT().Start(gomock.Any(), s.requestID).
		Return(&models.HiringRequest{ID: s.requestID, Status: models.StatusInProgress}, nil)
	rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodPost, s.path("/start")), s.caller))
	testutil.AssertJSONContains(s.T(), rr, "status", "IN_PROGRESS")

	s.service.EXPECT().AuthorizeParty(gomock.Any(), s.requestID, s.caller).Return(nil)
	s.service.EXPECT().Complete(gomock.Any(), s.requestID).
		Return(&models.HiringRequest{ID: s.requestID, Status: models.StatusCompleted}, nil)
	rr = testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodPost, s.path("/complete")), s.caller))
	testutil.AssertJSONContains(s.T(), rr, "status", "COMPLETED")

	s.service.EXPECT().Cancel(gomock.Any(), s.requestID, s.caller).
		Return(nil, dErrors.New(dErrors.CodeInvalidState, "cannot cancel a completed hiring request"))
	rr = testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodPost, s.path("/cancel")), s.caller))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, "invalid_state")
}

func (s *HandlerSuite) TestListings() {
	s.Run("pending for investigator", func() {
		s.service.EXPECT().PendingForInvestigator(gomock.Any(), s.caller).
			Return([]*models.HiringRequest{{ID: s.requestID}}, nil)
		req := testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, "/investigators/"+s.caller.String()+"/hiring-requests?status=pending"), s.caller)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		body := testutil.UnmarshalResponse[map[string][]models.HiringRequest](s.T(), rr)
		s.Len((*body)["hiring_requests"], 1)
	})

	s.Run("completed contracts", func() {
		s.service.EXPECT().CompletedContracts(gomock.Any(), s.caller).Return([]*models.HiringRequest{}, nil)
		req := testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, "/users/"+s.caller.String()+"/contracts?state=completed"), s.caller)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})

	s.Run("unknown contract state", func() {
		req := testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, "/users/"+s.caller.String()+"/contracts?state=stale"), s.caller)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})

	s.Run("success rate", func() {
		s.service.EXPECT().SuccessRate(gomock.Any(), s.caller).Return(50.0, nil)
		req := testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, "/users/"+s.caller.String()+"/hiring-success-rate"), s.caller)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertJSONContains(s.T(), rr, "success_rate", 50.0)
	})
}
