package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"casebook/internal/cases/handler/mocks"
	"casebook/internal/cases/models"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockService
	router  chi.Router
	caller  id.UserID
	caseID  id.CaseID
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
	s.caseID = id.CaseID(uuid.New())
}

func (s *HandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerSuite) do(method, path string, body any) *http.Request {
	if body == nil {
		return testutil.AsUser(testutil.NewRequest(s.T(), method, path), s.caller)
	}
	return testutil.AsUser(testutil.NewJSONRequest(s.T(), method, path, body), s.caller)
}

func (s *HandlerSuite) casePath(suffix string) string {
	return "/cases/" + uuid.UUID(s.caseID).String() + suffix
}

func (s *HandlerSuite) TestCreate() {
	req := models.NewCaseRequest{Title: "The Speckled Band"}
	s.service.EXPECT().Create(gomock.Any(), s.caller, req).
		Return(&models.CrimeCase{ID: s.caseID, Title: req.Title, Status: models.StatusOpen}, nil)

	rr := testutil.DoRequest(s.router, s.do(http.MethodPost, "/cases", req))
	testutil.AssertStatus(s.T(), rr, http.StatusCreated)
	testutil.AssertJSONContains(s.T(), rr, "status", "OPEN")
}

func (s *HandlerSuite) TestList() {
	s.Run("parses filter", func() {
		s.service.EXPECT().List(gomock.Any(), models.Filter{Status: models.StatusSolved}).Return([]*models.CrimeCase{}, nil)
		rr := testutil.DoRequest(s.router, s.do(http.MethodGet, "/cases?status=solved", nil))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})

	s.Run("rejects unknown enum", func() {
		rr := testutil.DoRequest(s.router, s.do(http.MethodGet, "/cases?status=cold", nil))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})
}

func (s *HandlerSuite) TestSolve() {
	s.Run("solver comes from the token", func() {
		s.service.EXPECT().Solve(gomock.Any(), s.caseID, s.caller, "The snake", "").
			Return(&models.CrimeCase{ID: s.caseID, Status: models.StatusSolved}, nil)
		rr := testutil.DoRequest(s.router, s.do(http.MethodPost, s.casePath("/solve"), models.SolveRequest{Solution: " The snake "}))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})

	s.Run("second solve conflicts", func() {
		s.service.EXPECT().Solve(gomock.Any(), s.caseID, s.caller, "Moriarty", "").
			Return(nil, dErrors.New(dErrors.CodeInvalidState, "case is already solved"))
		rr := testutil.DoRequest(s.router, s.do(http.MethodPost, s.casePath("/solve"), models.SolveRequest{Solution: "Moriarty"}))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, "invalid_state")
	})

	s.Run("empty solution", func() {
		rr := testutil.DoRequest(s.router, s.do(http.MethodPost, s.casePath("/solve"), models.SolveRequest{}))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})
}

func (s *HandlerSuite) TestManagedTransitions() {
	s.Run("authorized manager closes", func() {
		gomock.InOrder(
			s.service.EXPECT().AuthorizeManager(gomock.Any(), s.caseID, s.caller).Return(nil),
			s.service.EXPECT().Close(gomock.Any(), s.caseID).Return(&models.CrimeCase{ID: s.caseID, Status: models.StatusClosed}, nil),
		)
		rr := testutil.DoRequest(s.router, s.do(http.MethodPost, s.casePath("/close"), nil))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		testutil.AssertJSONContains(s.T(), rr, "status", "CLOSED")
	})

	s.Run("non-manager never reaches the transition", func() {
		s.service.EXPECT().AuthorizeManager(gomock.Any(), s.caseID, s.caller).
			Return(dErrors.New(dErrors.CodeForbidden, "only the posting organization or an admin can manage this case"))
		rr := testutil.DoRequest(s.router, s.do(http.MethodPost, s.casePath("/reopen"), nil))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusForbidden, "forbidden")
	})

	s.Run("assign validates solver id before authorizing", func() {
		rr := testutil.DoRequest(s.router, s.do(http.MethodPost, s.casePath("/primary-solver"), models.AssignSolverRequest{SolverID: "x"}))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})

	s.Run("assign", func() {
		solver := id.UserID(uuid.New())
		s.service.EXPECT().AuthorizeManager(gomock.Any(), s.caseID, s.caller).Return(nil)
		s.service.EXPECT().AddAssignedSolver(gomock.Any(), s.caseID, solver).Return(&models.CrimeCase{ID: s.caseID}, nil)
		rr := testutil.DoRequest(s.router, s.do(http.MethodPost, s.casePath("/solvers"), models.AssignSolverRequest{SolverID: uuid.UUID(solver).String()}))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})
}

func (s *HandlerSuite) TestDeleteAndGet() {
	s.service.EXPECT().Delete(gomock.Any(), s.caseID, s.caller).Return(nil)
	rr := testutil.DoRequest(s.router, s.do(http.MethodDelete, s.casePath(""), nil))
	testutil.AssertStatus(s.T(), rr, http.StatusNoContent)

	s.service.EXPECT().Get(gomock.Any(), s.caseID).Return(nil, dErrors.New(dErrors.CodeNotFound, "case not found"))
	rr = testutil.DoRequest(s.router, s.do(http.MethodGet, s.casePath(""), nil))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")

	rr = testutil.DoRequest(s.router, s.do(http.MethodGet, "/cases/not-a-uuid", nil))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
}
