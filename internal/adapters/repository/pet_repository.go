package repository

import (
	"context"
	"database/sql"

	"github.com/pawfectstay/booking-service/internal/core/domain"
	"github.com/pawfectstay/booking-service/internal/core/ports"
)

type PetRepository struct {
	db *sql.DB
}

var _ ports.PetRepository = (*PetRepository)(nil)

func NewPetRepository(db *sql.DB) *PetRepository {
	return &PetRepository{db: db}
}

func (r *PetRepository) CreatePet(ctx context.Context, pet domain.Pet) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO pets (id, name, breed, age, owner_id, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		pet.ID,
		pet.Name,
		pet.Breed,
		pet.Age,
		pet.OwnerID,
		pet.CreatedAt,
	)
	return translateError(err)
}

func (r *PetRepository) FindPetByID(ctx context.Context, id string) (*domain.Pet, error) {
	var pet domain.Pet
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, breed, age, owner_id, created_at FROM pets WHERE id = $1",
		id,
	).Scan(&pet.ID, &pet.Name, &pet.Breed, &pet.Age, &pet.OwnerID, &pet.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &pet, nil
}

func (r *PetRepository) ListPetsByOwner(ctx context.Context, ownerID string) ([]domain.Pet, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, breed, age, owner_id, created_at FROM pets WHERE owner_id = $1 ORDER BY created_at DESC",
		ownerID,
	)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	pets := []domain.Pet{}
	for rows.Next() {
		var pet domain.Pet
		if err := rows.Scan(&pet.ID, &pet.Name, &pet.Breed, &pet.Age, &pet.OwnerID, &pet.CreatedAt); err != nil {
			return nil, translateError(err)
		}
		pets = append(pets, pet)
	}
	return pets, translateError(rows.Err())
}

func (r *PetRepository) ListAllPets(ctx context.Context) ([]domain.PetWithOwner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.breed, p.age, p.owner_id, p.created_at,
		       u.first_name, u.last_name, u.email
		FROM pets p
		JOIN users u ON u.id = p.owner_id
		ORDER BY p.created_at DESC`,
	)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	pets := []domain.PetWithOwner{}
	for rows.Next() {
		var pet domain.PetWithOwner
		if err := rows.Scan(
			&pet.ID, &pet.Name, &pet.Breed, &pet.Age, &pet.OwnerID, &pet.CreatedAt,
			&pet.OwnerFirstName, &pet.OwnerLastName, &pet.OwnerEmail,
		); err != nil {
			return nil, translateError(err)
		}
		pets = append(pets, pet)
	}
	return pets, translateError(rows.Err())
}

func (r *PetRepository) UpdatePet(ctx context.Context, pet domain.Pet) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE pets SET name = $1, breed = $2, age = $3 WHERE id = $4",
		pet.Name,
		pet.Breed,
		pet.Age,
		pet.ID,
	)
	if err != nil {
		return translateError(err)
	}
	return checkAffected(result)
}

func (r *PetRepository) DeletePet(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM pets WHERE id = $1", id)
	if err != nil {
		return translateError(err)
	}
	return checkAffected(result)
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return translateError(err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
