package mysql

const createReviewArchiveSQL = `
CREATE TABLE IF NOT EXISTS review_archive (
  id         BIGINT AUTO_INCREMENT PRIMARY KEY,
  hotel_name VARCHAR(255) NOT NULL,
  reviewer   VARCHAR(255) NOT NULL,
  rating     INT NOT NULL,
  comment    TEXT,
  row_hash   CHAR(40) NOT NULL,
  seen_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  UNIQUE KEY uq_review_row (row_hash),
  KEY idx_review_hotel (hotel_name)
) CHARACTER SET utf8mb4
`

const createBookingArchiveSQL = `
CREATE TABLE IF NOT EXISTS booking_archive (
  id               BIGINT AUTO_INCREMENT PRIMARY KEY,
  hotel_name       VARCHAR(255) NOT NULL,
  room_type        VARCHAR(255) NOT NULL,
  price            DOUBLE NOT NULL,
  user_name        VARCHAR(255) NOT NULL,
  phone            VARCHAR(64),
  email            VARCHAR(255),
  num_adults       INT NOT NULL,
  num_children     INT NOT NULL,
  checkin_date     VARCHAR(32),
  nights           INT NOT NULL,
  special_requests TEXT,
  booking_time     DATETIME NOT NULL,
  seen_at          TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  UNIQUE KEY uq_booking (hotel_name, user_name, booking_time),
  KEY idx_booking_hotel (hotel_name)
) CHARACTER SET utf8mb4
`

// Re-archiving the same log rows must be idempotent; duplicates only bump
// seen_at.
const insertReviewsPrefix = "INSERT INTO review_archive\n  (hotel_name, reviewer, rating, comment, row_hash)\nVALUES "

const insertReviewsOnDup = " ON DUPLICATE KEY UPDATE seen_at = CURRENT_TIMESTAMP"

const insertBookingsPrefix = "INSERT INTO booking_archive\n" +
	"  (hotel_name, room_type, price, user_name, phone, email, num_adults, num_children, checkin_date, nights, special_requests, booking_time)\nVALUES "

const insertBookingsOnDup = " ON DUPLICATE KEY UPDATE seen_at = CURRENT_TIMESTAMP"
