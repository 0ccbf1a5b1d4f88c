package store

import (
	"fmt"

	"github.com/JosiahVarughese/mojo-social/internal/models"
)

// SeedPassword is the password every seeded account gets.
const SeedPassword = "pa$$w0rd"

const fillerPostContent = "This is filler content to make it look like people are actually talking about stuff. " +
	"Would you like me to say more? I don't know if I could! I have said so much already! " +
	"but really you should stop reading this."

// DefaultRoster is the built-in cast of seeded accounts.
func DefaultRoster() []string {
	return []string{
		"Darth Vader",
		"Saitama",
		"Edgar Allan Poe",
		"John Wick",
		"Rambo",
		"Mr. Miyagi",
		"Albus Percival Wulfric Brian Dumbledore",
		"Stan Lee",
		"Michael Bolton",
		"Jackie Chan",
		"Leonardo da Vinci",
		"Captain Falcon",
		"Batman",
		"Bob Ross",
		"Mr. Rogers",
		"Pikachu",
	}
}

// PopulateSampleData seeds the demo dataset: the primary "MoJo" account,
// one account per roster name, a greeting DM and a post from each, three
// messages on a shared group thread, and finally a login as MoJo. Shape
// is deterministic; timestamps and ids come from the usual generators.
// An empty roster falls back to DefaultRoster. This is demo bootstrap,
// not a production data path.
func (s *Store) PopulateSampleData(roster []string) {
	if len(roster) == 0 {
		roster = DefaultRoster()
	}

	s.Register("MoJo", SeedPassword)
	mojo := s.FindUserByName("MoJo")

	body := fillerPostContent + "\n\n" + fillerPostContent + "\n\n" + fillerPostContent

	var dummies []models.User
	for _, name := range roster {
		s.Register(name, SeedPassword)
		dummy := s.FindUserByName(name)
		dummies = append(dummies, dummy)

		s.SendMessage(fmt.Sprintf("Hello MoJo this is %s!", dummy.Username), []models.User{mojo, dummy}, dummy)
		s.SavePost(s.CreatePost("A Very Interesting Post About Something", body, dummy))
	}

	if len(dummies) >= 3 {
		group := []models.User{dummies[0], dummies[1], dummies[2], mojo}
		s.SendMessage("This is a group message test.", group, dummies[0])
		s.SendMessage("This is a group message test.", group, dummies[1])
		s.SendMessage("This is a group message test.", group, dummies[2])
	}

	s.Login(mojo.Username, SeedPassword)
	s.log.Info("sample data populated", "accounts", len(s.accounts), "posts", len(s.posts))
}
