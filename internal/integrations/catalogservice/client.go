package catalogservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-InventoryService/internal/domain"
)

// Client клиент для работы с каталогом номеров
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetRoom получает тип номера по ID
func (c *Client) GetRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	url := fmt.Sprintf("%s/internal/rooms/%d", c.baseURL, roomID)

	var room Room
	if err := c.get(ctx, url, ErrRoomNotFound, &room); err != nil {
		if !errors.Is(err, ErrRoomNotFound) {
			c.log.Error("GetRoom: room_id=%d: %v", roomID, err)
		}
		return nil, err
	}

	return room.ToDomain(), nil
}

// GetHotelRooms получает все типы номеров отеля
func (c *Client) GetHotelRooms(ctx context.Context, hotelID int64) ([]*domain.Room, error) {
	url := fmt.Sprintf("%s/internal/hotels/%d/rooms", c.baseURL, hotelID)

	var resp HotelRoomsResponse
	if err := c.get(ctx, url, ErrHotelNotFound, &resp); err != nil {
		if !errors.Is(err, ErrHotelNotFound) {
			c.log.Error("GetHotelRooms: hotel_id=%d: %v", hotelID, err)
		}
		return nil, err
	}

	rooms := make([]*domain.Room, 0, len(resp.Rooms))
	for _, r := range resp.Rooms {
		room := r.ToDomain()
		// каталог может не заполнять hotel_id во вложенных номерах
		if room.HotelID == 0 {
			room.HotelID = hotelID
		}
		rooms = append(rooms, room)
	}

	c.log.Info("GetHotelRooms: hotel_id=%d, rooms=%d", hotelID, len(rooms))
	return rooms, nil
}

func (c *Client) get(ctx context.Context, url string, notFound error, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return notFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, errorMessage(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// errorMessage достает message из ErrorResponse каталога, иначе возвращает тело как есть
func errorMessage(body []byte) string {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(body)
}
