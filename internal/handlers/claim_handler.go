package handlers

import (
	"errors"

	"github.com/discvault/api/internal/claims"
	"github.com/discvault/api/internal/dto"
	"github.com/discvault/api/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ClaimHandler exposes the claim lifecycle over HTTP. The lifecycle rules
// themselves live in the claims package; this layer only translates errors
// to status codes.
type ClaimHandler struct {
	claimService *claims.Service
	gate         *claims.DisclosureGate
}

func NewClaimHandler(claimService *claims.Service, gate *claims.DisclosureGate) *ClaimHandler {
	return &ClaimHandler{claimService: claimService, gate: gate}
}

func (h *ClaimHandler) Submit(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	lostDiscID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid lost disc ID",
		})
	}

	var req dto.SubmitClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	claim, err := h.claimService.Submit(lostDiscID, userID, req.Message)
	if err != nil {
		if errors.Is(err, claims.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Lost disc not found",
			})
		}
		return claimError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(claim)
}

func (h *ClaimHandler) ListMine(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	list, err := h.claimService.ListByClaimer(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list claims",
		})
	}

	return c.JSON(fiber.Map{"claims": list, "count": len(list)})
}

func (h *ClaimHandler) ListOnMyDiscs(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	list, err := h.claimService.ListByFinder(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list claims",
		})
	}

	return c.JSON(fiber.Map{"claims": list, "count": len(list)})
}

func (h *ClaimHandler) Review(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	claimID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid claim ID",
		})
	}

	var req dto.ReviewClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	decision := claims.Decision(req.Decision)
	if decision != claims.DecisionApprove && decision != claims.DecisionReject {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Decision must be approve or reject",
		})
	}

	claim, err := h.claimService.Review(claimID, userID, decision)
	if err != nil {
		return claimError(c, err)
	}

	return c.JSON(claim)
}

func (h *ClaimHandler) Complete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	claimID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid claim ID",
		})
	}

	claim, err := h.claimService.Complete(claimID, userID)
	if err != nil {
		return claimError(c, err)
	}

	return c.JSON(claim)
}

func (h *ClaimHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	claimID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid claim ID",
		})
	}

	if err := h.claimService.Delete(claimID, userID); err != nil {
		return claimError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Claim deleted successfully"})
}

// Contact returns the other party's contact details for an approved or
// completed claim.
func (h *ClaimHandler) Contact(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	claimID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid claim ID",
		})
	}

	target := claims.Party(c.Query("target"))
	if target != claims.PartyFinder && target != claims.PartyClaimer {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Target must be finder or claimer",
		})
	}

	contact, err := h.gate.Contact(claimID, userID, target)
	if err != nil {
		return claimError(c, err)
	}

	return c.JSON(contact)
}

func claimError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, claims.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Claim not found",
		})
	case errors.Is(err, claims.ErrDuplicateClaim):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: "You have already claimed this disc",
		})
	case errors.Is(err, claims.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "You are not allowed to perform this action",
		})
	case errors.Is(err, claims.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: "Claim is not in a state that allows this action",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}
