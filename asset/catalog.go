package asset

// DefaultCatalog is the built-in entity catalog used by the tools
const DefaultCatalog = `

# === Statuses ===

[statuses.Rage]
name = "Rage"
lifespan = 240

[statuses.Discipline]
name = "Discipline"
lifespan = 240

[statuses.Poisoned]
name = "Poisoned"
lifespan = 180

[statuses.Cold]
name = "Cold (Disease)"
lifespan = 600

[statuses.HealthRecovery1]
name = "Health Recovery 1"
lifespan = 120
effects = [{ kind = "health" }]
data = [["0.15"]]

[statuses.HealthRecovery3]
name = "Health Recovery 3"
lifespan = 180
effects = [{ kind = "health" }]
data = [["0.4"]]

[statuses.StaminaRecovery2]
name = "Stamina Recovery 2"
lifespan = 240
effects = [{ kind = "stamina" }]
data = [["0.25"]]

[statuses.ManaRatioRecovery]
name = "Mana Ratio Recovery 2"
lifespan = 300
effects = [{ kind = "mana" }]
data = [["0.1"]]

[statuses.Purification]
name = "Purification"
lifespan = 90
effects = [{ kind = "corruption" }]
data = [["-2"]]

[statuses.Hunger]
name = "Well Fed"
lifespan = 600
effects = [{ kind = "food" }]
data = [["1"]]


# === Water ===

[water.clean]
effects = [{ kind = "drink", amount = 300 }]

[water.fresh]
effects = [
    { kind = "drink", amount = 300 },
    { kind = "add_status", status = "StaminaRecovery2" },
]

[water.salt]
effects = [
    { kind = "drink", amount = 150 },
    { kind = "health", amount = -2 },
]

[water.rancid]
effects = [
    { kind = "drink", amount = 300 },
    { kind = "add_status", status = "Cold", chance = 20 },
]

[water.magic]
effects = [
    { kind = "drink", amount = 300 },
    { kind = "add_status", status = "ManaRatioRecovery" },
]

[water.pure]
effects = [
    { kind = "drink", amount = 300 },
    { kind = "remove_status", scope = "negative" },
]

[water.healing]
effects = [
    { kind = "drink", amount = 300 },
    { kind = "add_status", status = "HealthRecovery3" },
]


# === Ingestibles ===

[[entities]]
id = 4000010
name = "Gaberry Jam"
kind = "ingestible"
depletion_rate = 0.4
effects = [
    { kind = "food", amount = 75 },
    { kind = "add_status", status = "HealthRecovery1" },
]

[[entities]]
id = 4100550
name = "Travel Ration"
kind = "ingestible"
depletion_rate = 0.04
effects = [
    { kind = "food", amount = 150 },
    { kind = "add_status", status = "Hunger" },
]

[[entities]]
id = 4300010
name = "Life Potion"
kind = "ingestible"
effects = [
    { kind = "health", amount = 40 },
    { kind = "max_health", amount = 5 },
    { kind = "add_status", status = "HealthRecovery3" },
]

[[entities]]
id = 4300040
name = "Rage Potion"
kind = "ingestible"
effects = [
    { kind = "stamina", amount = 15 },
    { kind = "add_status", status = "Rage" },
    { kind = "add_status", status = "Poisoned", chance = 35 },
]

[[entities]]
id = 4300130
name = "Great Endurance Potion"
kind = "ingestible"
effects = [
    { kind = "max_stamina", amount = 10 },
    { kind = "stamina", amount = 40 },
    { kind = "add_status", status = "Discipline" },
]

[[entities]]
id = 4300210
name = "Antidote"
kind = "ingestible"
effects = [
    { kind = "remove_status", scope = "specific", target = "Poisoned" },
    { kind = "drink", amount = 50 },
]

[[entities]]
id = 4300350
name = "Cool Potion"
kind = "ingestible"
effects = [
    { kind = "remove_status", scope = "family", target = "Burning" },
    { kind = "affect_temperature", amount = -8 },
]

[[entities]]
id = 4000380
name = "Gep's Drink"
kind = "ingestible"
effects = [
    { kind = "corruption", amount = -150 },
    { kind = "add_status", status = "Purification" },
    { kind = "remove_status", scope = "negative" },
]

[[entities]]
id = 4100170
name = "Bitter Spicy Tea"
kind = "ingestible"
depletion_rate = 1.2
effects = [
    { kind = "drink", amount = 150 },
    { kind = "fatigue", amount = -50 },
    { kind = "remove_status", scope = "type", target = "Cold" },
]


# === Water items ===

[[entities]]
id = 5600000
name = "Clean Water"
kind = "water"

[[entities]]
id = 5600002
name = "Salt Water"
kind = "water"

[[entities]]
id = 5600005
name = "Leyline Water"
kind = "water"

[[entities]]
id = 5600006
name = "Healing Water"
kind = "water"

[[entities]]
id = 4200040
name = "Waterskin"
kind = "water_container"
contains = 5600006


# === Skills ===

[[entities]]
id = 8100010
name = "Dagger Slash"
kind = "skill"
costs = { cooldown = 30, stamina = 6, durability = 1 }

[[entities]]
id = 8200180
name = "Conjure"
kind = "skill"
costs = { cooldown = 125, mana = 13.5, health = 5 }

[[entities]]
id = 8100250
name = "Sweep Kick"
kind = "skill"
costs = { cooldown = 12, stamina = 9, durability_percent = 2 }


# === Equipment ===

[[entities]]
id = 2000010
name = "Iron Sword"
kind = "equipment"
max_durability = 250
weapon = { type = "melee", attack_speed = 1.1, impact = 18.4 }

[[entities]]
id = 2150030
name = "Duty"
kind = "equipment"
max_durability = 777
weapon = { type = "melee", attack_speed = 0.8, impact = 42 }

[[entities]]
id = 2300000
name = "Round Shield"
kind = "equipment"
max_durability = 175
impact_resistance = 12.5
barrier_protection = 1
weapon = { type = "shield", attack_speed = 1.2, impact = 25 }

[[entities]]
id = 3000130
name = "Scaled Leather Armor"
kind = "equipment"
max_durability = 335
impact_resistance = 10
`
