package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"overcooked-bot/bot-svc/internal/domain"
)

const maxAddressName = 64

type AddressService struct {
	repo AddressRepository
	zone domain.DeliveryZone
}

func NewAddressService(repo AddressRepository, zone domain.DeliveryZone) *AddressService {
	return &AddressService{repo: repo, zone: zone}
}

func (s *AddressService) List(ctx context.Context, chatID int64) ([]domain.Address, error) {
	return s.repo.ListAddresses(ctx, chatID)
}

func (s *AddressService) Get(ctx context.Context, chatID int64, addressID int) (*domain.Address, error) {
	return s.repo.GetAddress(ctx, chatID, addressID)
}

func (s *AddressService) ByName(ctx context.Context, chatID int64, name string) (*domain.Address, error) {
	return s.repo.AddressByName(ctx, chatID, strings.TrimSpace(name))
}

// CheckLocation validates a point against coordinate ranges and the delivery zone.
func (s *AddressService) CheckLocation(lat, lon float64) error {
	return s.zone.Check(lat, lon)
}

func (s *AddressService) Create(ctx context.Context, chatID int64, name string, lat, lon float64) (*domain.Address, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	if err := s.zone.Check(lat, lon); err != nil {
		return nil, err
	}

	addr := &domain.Address{Name: name, Latitude: lat, Longitude: lon}
	if err := s.repo.CreateAddress(ctx, chatID, addr); err != nil {
		return nil, fmt.Errorf("create address for %d: %w", chatID, err)
	}
	return addr, nil
}

func (s *AddressService) Relocate(ctx context.Context, chatID int64, addressID int, lat, lon float64) error {
	if err := s.zone.Check(lat, lon); err != nil {
		return err
	}
	return s.repo.UpdateAddressLocation(ctx, chatID, addressID, lat, lon)
}

func (s *AddressService) Rename(ctx context.Context, chatID int64, addressID int, name string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}
	return s.repo.UpdateAddressName(ctx, chatID, addressID, name)
}

func (s *AddressService) Delete(ctx context.Context, chatID int64, addressID int) error {
	return s.repo.DeleteAddress(ctx, chatID, addressID)
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxAddressName {
		return "", fmt.Errorf("%w: address name must be 1-%d characters", domain.ErrValidation, maxAddressName)
	}
	return name, nil
}
