package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"syncguard/infras/otel"
	"syncguard/infras/vlm"
	"syncguard/internal/domains/document/model/dto"
	"syncguard/shared/constant"
	"syncguard/shared/failure"

	"github.com/rs/zerolog/log"
)

const scanSystemPrompt = `You extract structured guest identity data from photos of
identity documents (Aadhar, passport, driving licence, voter ID). Reply with a
single JSON object using these keys where legible: name, phone_number, email,
id_type, id_number, address, city, state, pin_code, country, nationality,
gender, dob (YYYY-MM-DD), father_or_husband_name, passport_number,
passport_place_issue, passport_issue_date, passport_expiry, visa_number,
visa_type, visa_place_issue, visa_issue_date, visa_expiry. Omit keys you
cannot read. No prose.`

const emailSystemPrompt = `You extract reservation details from hotel booking
emails sent by online travel agencies. Reply with a single JSON object using
these keys where present: guest_name, source (one of Direct, MMT, Booking.com,
Expedia), check_in (YYYY-MM-DD), check_out (YYYY-MM-DD), amount (number),
reservation_id, number_of_rooms, pax, room_type_name, phone_number, email.
Omit keys you cannot find. No prose.`

type Document interface {
	Scan(ctx context.Context, req dto.ScanRequest) (dto.ScanResponse, error)
	ParseEmail(ctx context.Context, req dto.ParseEmailRequest) (dto.ParseEmailResponse, error)
}

type serviceImpl struct {
	vlm  vlm.Client
	otel otel.Otel
}

func New(client vlm.Client, otel otel.Otel) Document {
	return &serviceImpl{
		vlm:  client,
		otel: otel,
	}
}

// Scan reads an identity document image into guest detail fields.
func (s *serviceImpl) Scan(ctx context.Context, req dto.ScanRequest) (res dto.ScanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".document.Scan")
	defer scope.End()
	defer scope.TraceIfError(err)

	images := []string{asDataURL(req.Image)}
	if req.ImageBack != constant.Empty {
		images = append(images, asDataURL(req.ImageBack))
	}

	reply, err := s.vlm.Complete(ctx, scanSystemPrompt, "Extract the guest details from this document.", images)
	if err != nil {
		log.Error().Err(err).Msg("document scan failed")

		return res, err
	}

	payload, err := vlm.ExtractJSON(reply)
	if err != nil {
		return res, failure.Upstream("vision model", err) // nolint:wrapcheck
	}

	if err = json.Unmarshal([]byte(payload), &res.Guest); err != nil {
		return res, failure.Upstream("vision model", fmt.Errorf("malformed extraction payload: %w", err)) // nolint:wrapcheck
	}

	return res, nil
}

// ParseEmail turns an OTA reservation email into a booking draft.
func (s *serviceImpl) ParseEmail(ctx context.Context, req dto.ParseEmailRequest) (res dto.ParseEmailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".document.ParseEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	prompt := req.Body
	if req.Subject != constant.Empty {
		prompt = "Subject: " + req.Subject + "\n\n" + req.Body
	}

	reply, err := s.vlm.Complete(ctx, emailSystemPrompt, prompt, nil)
	if err != nil {
		log.Error().Err(err).Msg("email parse failed")

		return res, err
	}

	payload, err := vlm.ExtractJSON(reply)
	if err != nil {
		return res, failure.Upstream("vision model", err) // nolint:wrapcheck
	}

	if err = json.Unmarshal([]byte(payload), &res.Draft); err != nil {
		return res, failure.Upstream("vision model", fmt.Errorf("malformed extraction payload: %w", err)) // nolint:wrapcheck
	}

	if res.Draft.Source == constant.Empty {
		res.Draft.Source = constant.SourceDirect
	}

	return res, nil
}

func asDataURL(image string) string {
	if strings.HasPrefix(image, "data:") {
		return image
	}

	return "data:image/jpeg;base64," + image
}
