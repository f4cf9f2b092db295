// This file is part of Mikey.
//
// Mikey is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mikey is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mikey.  If not, see <https://www.gnu.org/licenses/>.

package nointro

// table of md5 hashes of known good dumps
var table = map[string]Entry{
	"b425941149874c6371c40e85cc5b6241": {Title: "A.P.B. (USA, Europe)", Rotation: None},
	"8ce6c739d30d6c5ba197fcdd73d5ead5": {Title: "Alien vs Predator (USA) (Proto) (1993-12-17)", Rotation: None},
	"49d6eeb3c983246ff4d7034497f7095c": {Title: "Awesome Golf (USA, Europe)", Rotation: None},
	"8c9a72ddbb5559293862684ec67bfa92": {Title: "Baseball Heroes (USA, Europe)", Rotation: None},
	"f19b95e4835c5fbc44b180dbd3f024fc": {Title: "Basketbrawl (USA, Europe)", Rotation: None},
	"6e9bbff3c7b66d3ec0411ffbe0e41dfd": {Title: "Batman Returns (USA, Europe)", Rotation: None},
	"fddecd756abe5eaf613ca1db31d51df7": {Title: "Battle Wheels (USA, Europe)", Rotation: None},
	"d405ea54b77390b06222f9dac7cea827": {Title: "Battlezone 2000 (USA, Europe)", Rotation: None},
	"87dff4f4d5e1e4a7132d19f94d4e9b3a": {Title: "Bill & Ted's Excellent Adventure (USA, Europe)", Rotation: None},
	"c81abf2919effd525b83c2103b75e6ca": {Title: "Block Out (USA, Europe)", Rotation: None},
	"7c3cb287de2d9f67ff342b4e42592732": {Title: "Blue Lightning (USA, Europe) (Demo)", Rotation: None},
	"f7b4775771bc25d9053af5c69a8c8b2a": {Title: "Blue Lightning (USA, Europe)", Rotation: None},
	"90841f8fed54862f8a8750ddf212eb84": {Title: "Bubble Trouble (USA, Europe)", Rotation: None},
	"73e02bb77dcf857a6578f0e24b4ecb9e": {Title: "California Games (USA, Europe)", Rotation: None},
	"13cb869b95c67c532efdd0e924e37299": {Title: "Centipede (USA) (Proto)", Rotation: None},
	"85b33c5e5985ab041ecc44555a8cfb42": {Title: "Checkered Flag (USA, Europe)", Rotation: None},
	"24611d1445ebd34ab79fb0ae996ff4e4": {Title: "Chip's Challenge (USA, Europe)", Rotation: None},
	"b4acbd3c544a0d92cc8ad1380bf8a810": {Title: "Crystal Mines II (USA, Europe)", Rotation: None},
	"f8b4debd68eb0d7c578242fa74e1c593": {Title: "Daemonsgate (USA) (Proto)", Rotation: None},
	"f764b88c44afa8b5ebefb8eb2e4d7b97": {Title: "Desert Strike - Return to the Gulf (USA, Europe)", Rotation: None},
	"9496be61fd0675553f05345c5fc2d15c": {Title: "Dinolympics (USA, Europe)", Rotation: None},
	"8cd77bec912c9b4dcebd8a82dcf91a0b": {Title: "Dirty Larry - Renegade Cop (USA, Europe)", Rotation: None},
	"0e91b7ed60bb47d569ba24df671ad3a3": {Title: "Double Dragon (USA, Europe)", Rotation: None},
	"3ff35996887c2ff95e275085efbbbbed": {Title: "Dracula the Undead (USA, Europe)", Rotation: None},
	"c49ca94a908db219224c6d5baa206ab6": {Title: "Electrocop (USA, Europe)", Rotation: None},
	"32e726ab7941eb1e833dcc4cf348a060": {Title: "European Soccer Challenge (USA, Europe)", Rotation: None},
	"858480bb97d86a52b1ca17dc390a8bdc": {Title: "Eye of the Beholder (USA) (Proto)", Rotation: None},
	"7b3f49bda3162fac51a387905e6fb6f4": {Title: "Eye of the Beholder (USA) (Unl)", Rotation: None},
	"69abd21c83390dae54630919c3c150d0": {Title: "Fat Bobby (USA, Europe)", Rotation: None},
	"19eb0ca77284b5d91a63eb02f6962930": {Title: "Fidelity Ultimate Chess Challenge, The (USA, Europe)", Rotation: None},
	"d5be9118bcb14243468001b08c4aa21a": {Title: "Gates of Zendocon (USA, Europe)", Rotation: None},
	"8815ea087af1aa89b4f7b65bd3cb8534": {Title: "Gauntlet - The Third Encounter (USA, Europe) (Beta) (1990-06-04)", Rotation: Rotate270},
	"0b572c0dfb938849eeec39b2c9583547": {Title: "Gauntlet - The Third Encounter (USA, Europe)", Rotation: Rotate270},
	"eb9b5b2b6160e5f3015bc2a669d886b6": {Title: "Gordo 106 (USA, Europe)", Rotation: None},
	"c265f0de8c5bd77db8f9cf5a1f7ab68f": {Title: "Hard Drivin' (USA, Europe)", Rotation: None},
	"a08b8070ad613bdb2637162b3bf39574": {Title: "Hockey (USA, Europe)", Rotation: None},
	"76a48869c14fbcf85588001a1327253d": {Title: "Hydra (USA, Europe)", Rotation: None},
	"addc6c0ae7b535839815b8e7f7fd0f11": {Title: "Ishido - The Way of Stones (USA, Europe)", Rotation: None},
	"087e6ed018ad0573bd7ce3a91d34f2c9": {Title: "Jimmy Connors' Tennis (USA, Europe)", Rotation: None},
	"440462507cf5cffaa8d3d3a66f01ac6a": {Title: "Joust (USA, Europe)", Rotation: None},
	"57043e8e79588c067118a4d5f307cd76": {Title: "Klax (USA, Europe) (Beta)", Rotation: Rotate270},
	"f96a0ddcc72c971226e8fdfd95607c88": {Title: "Klax (USA, Europe)", Rotation: Rotate270},
	"7e82db12a5749ab983e2f3c8bf4c0f6e": {Title: "Krazy Ace - Miniature Golf (USA, Europe)", Rotation: None},
	"e5e42190918847b8c6056e78316ee91d": {Title: "Kung Food (USA, Europe)", Rotation: None},
	"3cae85572df3b43f0220326bf4bb3c8b": {Title: "Lemmings (USA, Europe)", Rotation: None},
	"7ee41edaef283459c9df93366c5da267": {Title: "Lexis (USA)", Rotation: None},
	"96fd77f3527bc6f65977b99ab63d7f84": {Title: "Lode Runner (USA) (Proto) (Unl)", Rotation: None},
	"8399c8fba48ba1a4389a96e75838dc49": {Title: "Loopz (USA) (Proto)", Rotation: None},
	"05d28ab0e92b19147e7f5ea88c6efb6d": {Title: "Lynx Casino (USA, Europe)", Rotation: None},
	"5d8fdfb15441cdfb8a1c66c243c486da": {Title: "Lynx II Production Test Program (USA)", Rotation: None},
	"98c851c7ed924e1c7123c60e5164819e": {Title: "Malibu Bikini Volleyball (USA, Europe) (Beta) (1993-05-11)", Rotation: None},
	"280344c8b073895ecce286d1b9d87d8b": {Title: "Malibu Bikini Volleyball (USA, Europe)", Rotation: None},
	"194a3eeb876d2b74cc480f4d337d79b3": {Title: "Marlboro Go! (Europe) (Proto)", Rotation: None},
	"192b6b764a3a1c7831e0a785fa4b5453": {Title: "Ms. Pac-Man (USA, Europe)", Rotation: None},
	"276b9be28571189912f05d321fcb04ef": {Title: "NFL Football (USA, Europe)", Rotation: Rotate90},
	"7ec4063eb6c7c74600d6a16fb3a3bdbd": {Title: "Ninja Gaiden (USA, Europe)", Rotation: None},
	"c9ed2a3bdefd6d5fdf67302d87b5cfb2": {Title: "Ninja Gaiden III - The Ancient Ship of Doom (USA, Europe)", Rotation: None},
	"0a14754b351b4f11a1359e252b8eb992": {Title: "Pac-Land (USA, Europe)", Rotation: None},
	"2a59d2ca6d6f07bc2791bf349e2778ee": {Title: "Paperboy (USA, Europe)", Rotation: None},
	"29a248fbc87f477b49587581e29c1dc7": {Title: "Pinball Jam (USA, Europe)", Rotation: None},
	"5565889a9a8817f99ec6dda322a70877": {Title: "Pit-Fighter (USA, Europe)", Rotation: None},
	"b29414b8c81cc9ef28ef2f7a09d6d876": {Title: "Power Factor (USA, Europe)", Rotation: None},
	"12e1eb0900402ef6de8b72dda5d22f47": {Title: "QIX (USA, Europe)", Rotation: None},
	"abfd6ae93c31e8f59aa934ad922cb4dd": {Title: "Raiden (USA) (Proto)", Rotation: Rotate270},
	"e0cb426257761c3688a866332ed48340": {Title: "Rampage (USA, Europe)", Rotation: None},
	"d8045ed542d5e58c779c884e0930e16c": {Title: "Rampart (USA, Europe)", Rotation: None},
	"702e4d515d9f33698407b118c4cd373f": {Title: "Road Riot 4WD (USA) (Proto 1)", Rotation: None},
	"8e0680d9d484749297bd7f4cfd5b7354": {Title: "Road Riot 4WD (USA) (Proto 2)", Rotation: None},
	"9222e42a160924dee0c87a67fdbc48d0": {Title: "Road Riot 4WD (USA) (Proto 3)", Rotation: None},
	"39617ebb81f3c1df27354c18571bd6c3": {Title: "RoadBlasters (USA, Europe)", Rotation: None},
	"f9faa45e3c35e505249c3f9df801737b": {Title: "Robo-Squash (USA, Europe)", Rotation: None},
	"60c1dfbf112bbb2a49cf16eddb191842": {Title: "Robotron 2084 (USA, Europe)", Rotation: None},
	"ff6fff314446ab70dfecb21e2de4a2f6": {Title: "Rygar (USA, Europe)", Rotation: None},
	"490f8063bbb299070c4aceab64195088": {Title: "S.T.U.N. Runner (USA, Europe)", Rotation: None},
	"0cf228912d2f8eeb29aa215abf416f6d": {Title: "Scrapyard Dog (USA, Europe)", Rotation: None},
	"f92d57198ef2da30dba63bdd7c15ff83": {Title: "Shadow of the Beast (USA, Europe)", Rotation: None},
	"46634eb87e6380d4d10f7b80d177c1ff": {Title: "Shanghai (USA, Europe)", Rotation: None},
	"8828c0042a1a397de67c4e49042161ff": {Title: "Steel Talons (USA, Europe)", Rotation: None},
	"67dd69e6ffaf61bc85243d272d9ee9d9": {Title: "Super Asteroids, Missile Command (USA, Europe)", Rotation: None},
	"6cd23cb37c4c4c34ef4e197468462f3f": {Title: "Super Off-Road (USA, Europe)", Rotation: None},
	"a19802bd3a7e390daf7e2cbe5a81ed38": {Title: "Super Skweek (USA, Europe)", Rotation: None},
	"4971dd8b47d3475dc8d31b5325c14459": {Title: "Switchblade II (USA, Europe)", Rotation: None},
	"4581ac0418679567dce041c88cc97719": {Title: "Todd's Adventures in Slime World (USA, Europe)", Rotation: None},
	"ec46311f47276e20cc43228c96d119a1": {Title: "Toki (USA, Europe)", Rotation: None},
	"391dfaba9ab8b9b60e9d8ca2a73f5711": {Title: "Tournament Cyberball (USA, Europe)", Rotation: None},
	"8caaaf56f95ee0bb610ca14af2d12a61": {Title: "Turbo Sub (USA, Europe)", Rotation: None},
	"44d7c4ea6b8d930075f5b05c94b5f973": {Title: "Viking Child (USA, Europe)", Rotation: None},
	"e7f118ac59f985ceea2ecfc0f17e9cc6": {Title: "Warbirds (USA, Europe)", Rotation: None},
	"7fcf204013cbedf7eaaf682ff5f216ba": {Title: "World Class Soccer (USA, Europe)", Rotation: None},
	"69fb597cb4db019c48fd2e0c1cc7b75c": {Title: "Xenophobe (USA, Europe)", Rotation: None},
	"c145bfe904e5d56f479df44204b255da": {Title: "Xybots (USA, Europe)", Rotation: None},
	"52997de9af205728a0e17ea3475f7ae2": {Title: "Zaku (USA) (Beta) (Unl)", Rotation: None},
	"6b9d6872961b22de6b1b0cced65d8e3f": {Title: "Zaku (USA) (Unl)", Rotation: None},
	"d008f41ec119e2c5c6a0782aebf148a8": {Title: "Zarlor Mercenary (USA, Europe)", Rotation: None},
}
