package itemtype

// definitions are all known item types, keyed without namespace.
var definitions = []definition{
	{Key: "acacia_boat", MaxAmount: 1},
	{Key: "acacia_button", MaxAmount: 64},
	{Key: "acacia_door", MaxAmount: 64},
	{Key: "acacia_fence", MaxAmount: 64},
	{Key: "acacia_fence_gate", MaxAmount: 64},
	{Key: "acacia_leaves", MaxAmount: 64},
	{Key: "acacia_log", MaxAmount: 64},
	{Key: "acacia_planks", MaxAmount: 64},
	{Key: "acacia_pressure_plate", MaxAmount: 64},
	{Key: "acacia_sapling", MaxAmount: 64},
	{Key: "acacia_sign", MaxAmount: 16},
	{Key: "acacia_slab", MaxAmount: 64},
	{Key: "acacia_stairs", MaxAmount: 64},
	{Key: "acacia_trapdoor", MaxAmount: 64},
	{Key: "acacia_wood", MaxAmount: 64},
	{Key: "activator_rail", MaxAmount: 64},
	{Key: "air", MaxAmount: 64},
	{Key: "allium", MaxAmount: 64},
	{Key: "amethyst_block", MaxAmount: 64},
	{Key: "amethyst_cluster", MaxAmount: 64},
	{Key: "amethyst_shard", MaxAmount: 64},
	{Key: "ancient_debris", MaxAmount: 64, Attributes: FireResistant},
	{Key: "andesite", MaxAmount: 64},
	{Key: "andesite_slab", MaxAmount: 64},
	{Key: "andesite_stairs", MaxAmount: 64},
	{Key: "andesite_wall", MaxAmount: 64},
	{Key: "anvil", MaxAmount: 64},
	{Key: "apple", MaxAmount: 64, Attributes: Edible},
	{Key: "armor_stand", MaxAmount: 16},
	{Key: "arrow", MaxAmount: 64},
	{Key: "axolotl_bucket", MaxAmount: 1},
	{Key: "axolotl_spawn_egg", MaxAmount: 64},
	{Key: "azalea", MaxAmount: 64},
	{Key: "azalea_leaves", MaxAmount: 64},
	{Key: "azure_bluet", MaxAmount: 64},
	{Key: "baked_potato", MaxAmount: 64, Attributes: Edible},
	{Key: "bamboo", MaxAmount: 64},
	{Key: "barrel", MaxAmount: 64},
	{Key: "barrier", MaxAmount: 64},
	{Key: "basalt", MaxAmount: 64},
	{Key: "bat_spawn_egg", MaxAmount: 64},
	{Key: "beacon", MaxAmount: 64},
	{Key: "bedrock", MaxAmount: 64},
	{Key: "bee_nest", MaxAmount: 64},
	{Key: "bee_spawn_egg", MaxAmount: 64},
	{Key: "beef", MaxAmount: 64, Attributes: Edible},
	{Key: "beehive", MaxAmount: 64},
	{Key: "beetroot", MaxAmount: 64, Attributes: Edible},
	{Key: "beetroot_seeds", MaxAmount: 64},
	{Key: "beetroot_soup", MaxAmount: 64, Attributes: Edible},
	{Key: "bell", MaxAmount: 64},
	{Key: "big_dripleaf", MaxAmount: 64},
	{Key: "birch_boat", MaxAmount: 1},
	{Key: "birch_button", MaxAmount: 64},
	{Key: "birch_door", MaxAmount: 64},
	{Key: "birch_fence", MaxAmount: 64},
	{Key: "birch_fence_gate", MaxAmount: 64},
	{Key: "birch_leaves", MaxAmount: 64},
	{Key: "birch_log", MaxAmount: 64},
	{Key: "birch_planks", MaxAmount: 64},
	{Key: "birch_pressure_plate", MaxAmount: 64},
	{Key: "birch_sapling", MaxAmount: 64},
	{Key: "birch_sign", MaxAmount: 16},
	{Key: "birch_slab", MaxAmount: 64},
	{Key: "birch_stairs", MaxAmount: 64},
	{Key: "birch_trapdoor", MaxAmount: 64},
	{Key: "birch_wood", MaxAmount: 64},
	{Key: "black_banner", MaxAmount: 16},
	{Key: "black_bed", MaxAmount: 1},
	{Key: "black_candle", MaxAmount: 64},
	{Key: "black_carpet", MaxAmount: 64},
	{Key: "black_concrete", MaxAmount: 64},
	{Key: "black_concrete_powder", MaxAmount: 64},
	{Key: "black_dye", MaxAmount: 64},
	{Key: "black_glazed_terracotta", MaxAmount: 64},
	{Key: "black_shulker_box", MaxAmount: 1},
	{Key: "black_stained_glass", MaxAmount: 64},
	{Key: "black_stained_glass_pane", MaxAmount: 64},
	{Key: "black_terracotta", MaxAmount: 64},
	{Key: "black_wool", MaxAmount: 64},
	{Key: "blackstone", MaxAmount: 64},
	{Key: "blackstone_slab", MaxAmount: 64},
	{Key: "blackstone_stairs", MaxAmount: 64},
	{Key: "blackstone_wall", MaxAmount: 64},
	{Key: "blast_furnace", MaxAmount: 64},
	{Key: "blaze_powder", MaxAmount: 64},
	{Key: "blaze_rod", MaxAmount: 64},
	{Key: "blaze_spawn_egg", MaxAmount: 64},
	{Key: "blue_banner", MaxAmount: 16},
	{Key: "blue_bed", MaxAmount: 1},
	{Key: "blue_candle", MaxAmount: 64},
	{Key: "blue_carpet", MaxAmount: 64},
	{Key: "blue_concrete", MaxAmount: 64},
	{Key: "blue_concrete_powder", MaxAmount: 64},
	{Key: "blue_dye", MaxAmount: 64},
	{Key: "blue_glazed_terracotta", MaxAmount: 64},
	{Key: "blue_ice", MaxAmount: 64},
	{Key: "blue_orchid", MaxAmount: 64},
	{Key: "blue_shulker_box", MaxAmount: 1},
	{Key: "blue_stained_glass", MaxAmount: 64},
	{Key: "blue_stained_glass_pane", MaxAmount: 64},
	{Key: "blue_terracotta", MaxAmount: 64},
	{Key: "blue_wool", MaxAmount: 64},
	{Key: "bone", MaxAmount: 64},
	{Key: "bone_block", MaxAmount: 64},
	{Key: "bone_meal", MaxAmount: 64},
	{Key: "book", MaxAmount: 64},
	{Key: "bookshelf", MaxAmount: 64},
	{Key: "bow", MaxAmount: 1, MaxDurability: 384},
	{Key: "bowl", MaxAmount: 64},
	{Key: "brain_coral", MaxAmount: 64},
	{Key: "brain_coral_block", MaxAmount: 64},
	{Key: "brain_coral_fan", MaxAmount: 64},
	{Key: "bread", MaxAmount: 64, Attributes: Edible},
	{Key: "brewing_stand", MaxAmount: 64},
	{Key: "brick", MaxAmount: 64},
	{Key: "brick_slab", MaxAmount: 64},
	{Key: "brick_stairs", MaxAmount: 64},
	{Key: "brick_wall", MaxAmount: 64},
	{Key: "bricks", MaxAmount: 64},
	{Key: "brown_banner", MaxAmount: 16},
	{Key: "brown_bed", MaxAmount: 1},
	{Key: "brown_candle", MaxAmount: 64},
	{Key: "brown_carpet", MaxAmount: 64},
	{Key: "brown_concrete", MaxAmount: 64},
	{Key: "brown_concrete_powder", MaxAmount: 64},
	{Key: "brown_dye", MaxAmount: 64},
	{Key: "brown_glazed_terracotta", MaxAmount: 64},
	{Key: "brown_mushroom", MaxAmount: 64},
	{Key: "brown_mushroom_block", MaxAmount: 64},
	{Key: "brown_shulker_box", MaxAmount: 1},
	{Key: "brown_stained_glass", MaxAmount: 64},
	{Key: "brown_stained_glass_pane", MaxAmount: 64},
	{Key: "brown_terracotta", MaxAmount: 64},
	{Key: "brown_wool", MaxAmount: 64},
	{Key: "bubble_coral", MaxAmount: 64},
	{Key: "bubble_coral_block", MaxAmount: 64},
	{Key: "bubble_coral_fan", MaxAmount: 64},
	{Key: "bucket", MaxAmount: 16},
	{Key: "budding_amethyst", MaxAmount: 64},
	{Key: "bundle", MaxAmount: 1},
	{Key: "cactus", MaxAmount: 64},
	{Key: "cake", MaxAmount: 1},
	{Key: "calcite", MaxAmount: 64},
	{Key: "campfire", MaxAmount: 64},
	{Key: "candle", MaxAmount: 64},
	{Key: "carrot", MaxAmount: 64, Attributes: Edible},
	{Key: "carrot_on_a_stick", MaxAmount: 1, MaxDurability: 25},
	{Key: "cartography_table", MaxAmount: 64},
	{Key: "carved_pumpkin", MaxAmount: 64},
	{Key: "cat_spawn_egg", MaxAmount: 64},
	{Key: "cauldron", MaxAmount: 64},
	{Key: "cave_spider_spawn_egg", MaxAmount: 64},
	{Key: "chain", MaxAmount: 64},
	{Key: "chain_command_block", MaxAmount: 64},
	{Key: "chainmail_boots", MaxAmount: 1, MaxDurability: 195},
	{Key: "chainmail_chestplate", MaxAmount: 1, MaxDurability: 240},
	{Key: "chainmail_helmet", MaxAmount: 1, MaxDurability: 165},
	{Key: "chainmail_leggings", MaxAmount: 1, MaxDurability: 225},
	{Key: "charcoal", MaxAmount: 64},
	{Key: "chest", MaxAmount: 64},
	{Key: "chest_minecart", MaxAmount: 1},
	{Key: "chicken", MaxAmount: 64, Attributes: Edible},
	{Key: "chicken_spawn_egg", MaxAmount: 64},
	{Key: "chipped_anvil", MaxAmount: 64},
	{Key: "chiseled_deepslate", MaxAmount: 64},
	{Key: "chiseled_nether_bricks", MaxAmount: 64},
	{Key: "chiseled_polished_blackstone", MaxAmount: 64},
	{Key: "chiseled_quartz_block", MaxAmount: 64},
	{Key: "chiseled_red_sandstone", MaxAmount: 64},
	{Key: "chiseled_sandstone", MaxAmount: 64},
	{Key: "chiseled_stone_bricks", MaxAmount: 64},
	{Key: "chorus_flower", MaxAmount: 64},
	{Key: "chorus_fruit", MaxAmount: 64, Attributes: Edible},
	{Key: "chorus_plant", MaxAmount: 64},
	{Key: "clay", MaxAmount: 64},
	{Key: "clay_ball", MaxAmount: 64},
	{Key: "clock", MaxAmount: 64},
	{Key: "coal", MaxAmount: 64},
	{Key: "coal_block", MaxAmount: 64},
	{Key: "coal_ore", MaxAmount: 64},
	{Key: "coarse_dirt", MaxAmount: 64},
	{Key: "cobbled_deepslate", MaxAmount: 64},
	{Key: "cobbled_deepslate_slab", MaxAmount: 64},
	{Key: "cobbled_deepslate_stairs", MaxAmount: 64},
	{Key: "cobbled_deepslate_wall", MaxAmount: 64},
	{Key: "cobblestone", MaxAmount: 64},
	{Key: "cobblestone_slab", MaxAmount: 64},
	{Key: "cobblestone_stairs", MaxAmount: 64},
	{Key: "cobblestone_wall", MaxAmount: 64},
	{Key: "cobweb", MaxAmount: 64},
	{Key: "cocoa_beans", MaxAmount: 64},
	{Key: "cod", MaxAmount: 64, Attributes: Edible},
	{Key: "cod_bucket", MaxAmount: 1},
	{Key: "cod_spawn_egg", MaxAmount: 64},
	{Key: "command_block", MaxAmount: 64},
	{Key: "command_block_minecart", MaxAmount: 1},
	{Key: "comparator", MaxAmount: 64},
	{Key: "compass", MaxAmount: 64},
	{Key: "composter", MaxAmount: 64},
	{Key: "conduit", MaxAmount: 64},
	{Key: "cooked_beef", MaxAmount: 64, Attributes: Edible},
	{Key: "cooked_chicken", MaxAmount: 64, Attributes: Edible},
	{Key: "cooked_cod", MaxAmount: 64, Attributes: Edible},
	{Key: "cooked_mutton", MaxAmount: 64, Attributes: Edible},
	{Key: "cooked_porkchop", MaxAmount: 64, Attributes: Edible},
	{Key: "cooked_rabbit", MaxAmount: 64, Attributes: Edible},
	{Key: "cooked_salmon", MaxAmount: 64, Attributes: Edible},
	{Key: "cookie", MaxAmount: 64, Attributes: Edible},
	{Key: "copper_block", MaxAmount: 64},
	{Key: "copper_ingot", MaxAmount: 64},
	{Key: "copper_ore", MaxAmount: 64},
	{Key: "cornflower", MaxAmount: 64},
	{Key: "cow_spawn_egg", MaxAmount: 64},
	{Key: "cracked_deepslate_bricks", MaxAmount: 64},
	{Key: "cracked_deepslate_tiles", MaxAmount: 64},
	{Key: "cracked_nether_bricks", MaxAmount: 64},
	{Key: "cracked_polished_blackstone_bricks", MaxAmount: 64},
	{Key: "cracked_stone_bricks", MaxAmount: 64},
	{Key: "crafting_table", MaxAmount: 64},
	{Key: "creeper_banner_pattern", MaxAmount: 1},
	{Key: "creeper_head", MaxAmount: 64},
	{Key: "creeper_spawn_egg", MaxAmount: 64},
	{Key: "crimson_button", MaxAmount: 64},
	{Key: "crimson_door", MaxAmount: 64},
	{Key: "crimson_fence", MaxAmount: 64},
	{Key: "crimson_fence_gate", MaxAmount: 64},
	{Key: "crimson_fungus", MaxAmount: 64},
	{Key: "crimson_hyphae", MaxAmount: 64},
	{Key: "crimson_nylium", MaxAmount: 64},
	{Key: "crimson_planks", MaxAmount: 64},
	{Key: "crimson_pressure_plate", MaxAmount: 64},
	{Key: "crimson_roots", MaxAmount: 64},
	{Key: "crimson_sign", MaxAmount: 16},
	{Key: "crimson_slab", MaxAmount: 64},
	{Key: "crimson_stairs", MaxAmount: 64},
	{Key: "crimson_stem", MaxAmount: 64},
	{Key: "crimson_trapdoor", MaxAmount: 64},
	{Key: "crossbow", MaxAmount: 1, MaxDurability: 465},
	{Key: "crying_obsidian", MaxAmount: 64},
	{Key: "cut_copper", MaxAmount: 64},
	{Key: "cut_copper_slab", MaxAmount: 64},
	{Key: "cut_copper_stairs", MaxAmount: 64},
	{Key: "cut_red_sandstone", MaxAmount: 64},
	{Key: "cut_red_sandstone_slab", MaxAmount: 64},
	{Key: "cut_sandstone", MaxAmount: 64},
	{Key: "cut_sandstone_slab", MaxAmount: 64},
	{Key: "cyan_banner", MaxAmount: 16},
	{Key: "cyan_bed", MaxAmount: 1},
	{Key: "cyan_candle", MaxAmount: 64},
	{Key: "cyan_carpet", MaxAmount: 64},
	{Key: "cyan_concrete", MaxAmount: 64},
	{Key: "cyan_concrete_powder", MaxAmount: 64},
	{Key: "cyan_dye", MaxAmount: 64},
	{Key: "cyan_glazed_terracotta", MaxAmount: 64},
	{Key: "cyan_shulker_box", MaxAmount: 1},
	{Key: "cyan_stained_glass", MaxAmount: 64},
	{Key: "cyan_stained_glass_pane", MaxAmount: 64},
	{Key: "cyan_terracotta", MaxAmount: 64},
	{Key: "cyan_wool", MaxAmount: 64},
	{Key: "damaged_anvil", MaxAmount: 64},
	{Key: "dandelion", MaxAmount: 64},
	{Key: "dark_oak_boat", MaxAmount: 1},
	{Key: "dark_oak_button", MaxAmount: 64},
	{Key: "dark_oak_door", MaxAmount: 64},
	{Key: "dark_oak_fence", MaxAmount: 64},
	{Key: "dark_oak_fence_gate", MaxAmount: 64},
	{Key: "dark_oak_leaves", MaxAmount: 64},
	{Key: "dark_oak_log", MaxAmount: 64},
	{Key: "dark_oak_planks", MaxAmount: 64},
	{Key: "dark_oak_pressure_plate", MaxAmount: 64},
	{Key: "dark_oak_sapling", MaxAmount: 64},
	{Key: "dark_oak_sign", MaxAmount: 16},
	{Key: "dark_oak_slab", MaxAmount: 64},
	{Key: "dark_oak_stairs", MaxAmount: 64},
	{Key: "dark_oak_trapdoor", MaxAmount: 64},
	{Key: "dark_oak_wood", MaxAmount: 64},
	{Key: "dark_prismarine", MaxAmount: 64},
	{Key: "dark_prismarine_slab", MaxAmount: 64},
	{Key: "dark_prismarine_stairs", MaxAmount: 64},
	{Key: "daylight_detector", MaxAmount: 64},
	{Key: "dead_brain_coral", MaxAmount: 64},
	{Key: "dead_brain_coral_block", MaxAmount: 64},
	{Key: "dead_brain_coral_fan", MaxAmount: 64},
	{Key: "dead_bubble_coral", MaxAmount: 64},
	{Key: "dead_bubble_coral_block", MaxAmount: 64},
	{Key: "dead_bubble_coral_fan", MaxAmount: 64},
	{Key: "dead_bush", MaxAmount: 64},
	{Key: "dead_fire_coral", MaxAmount: 64},
	{Key: "dead_fire_coral_block", MaxAmount: 64},
	{Key: "dead_fire_coral_fan", MaxAmount: 64},
	{Key: "dead_horn_coral", MaxAmount: 64},
	{Key: "dead_horn_coral_block", MaxAmount: 64},
	{Key: "dead_horn_coral_fan", MaxAmount: 64},
	{Key: "dead_tube_coral", MaxAmount: 64},
	{Key: "dead_tube_coral_block", MaxAmount: 64},
	{Key: "dead_tube_coral_fan", MaxAmount: 64},
	{Key: "debug_stick", MaxAmount: 1},
	{Key: "deepslate", MaxAmount: 64},
	{Key: "deepslate_brick_slab", MaxAmount: 64},
	{Key: "deepslate_brick_stairs", MaxAmount: 64},
	{Key: "deepslate_brick_wall", MaxAmount: 64},
	{Key: "deepslate_bricks", MaxAmount: 64},
	{Key: "deepslate_coal_ore", MaxAmount: 64},
	{Key: "deepslate_copper_ore", MaxAmount: 64},
	{Key: "deepslate_diamond_ore", MaxAmount: 64},
	{Key: "deepslate_emerald_ore", MaxAmount: 64},
	{Key: "deepslate_gold_ore", MaxAmount: 64},
	{Key: "deepslate_iron_ore", MaxAmount: 64},
	{Key: "deepslate_lapis_ore", MaxAmount: 64},
	{Key: "deepslate_redstone_ore", MaxAmount: 64},
	{Key: "deepslate_tile_slab", MaxAmount: 64},
	{Key: "deepslate_tile_stairs", MaxAmount: 64},
	{Key: "deepslate_tile_wall", MaxAmount: 64},
	{Key: "deepslate_tiles", MaxAmount: 64},
	{Key: "detector_rail", MaxAmount: 64},
	{Key: "diamond", MaxAmount: 64},
	{Key: "diamond_axe", MaxAmount: 1, MaxDurability: 1561, Attributes: DiamondTier},
	{Key: "diamond_block", MaxAmount: 64},
	{Key: "diamond_boots", MaxAmount: 1, MaxDurability: 429},
	{Key: "diamond_chestplate", MaxAmount: 1, MaxDurability: 528},
	{Key: "diamond_helmet", MaxAmount: 1, MaxDurability: 363},
	{Key: "diamond_hoe", MaxAmount: 1, MaxDurability: 1561, Attributes: DiamondTier},
	{Key: "diamond_horse_armor", MaxAmount: 1},
	{Key: "diamond_leggings", MaxAmount: 1, MaxDurability: 495},
	{Key: "diamond_ore", MaxAmount: 64},
	{Key: "diamond_pickaxe", MaxAmount: 1, MaxDurability: 1561, Attributes: DiamondTier},
	{Key: "diamond_shovel", MaxAmount: 1, MaxDurability: 1561, Attributes: DiamondTier},
	{Key: "diamond_sword", MaxAmount: 1, MaxDurability: 1561, Attributes: DiamondTier},
	{Key: "diorite", MaxAmount: 64},
	{Key: "diorite_slab", MaxAmount: 64},
	{Key: "diorite_stairs", MaxAmount: 64},
	{Key: "diorite_wall", MaxAmount: 64},
	{Key: "dirt", MaxAmount: 64},
	{Key: "dirt_path", MaxAmount: 64},
	{Key: "dispenser", MaxAmount: 64},
	{Key: "dolphin_spawn_egg", MaxAmount: 64},
	{Key: "donkey_spawn_egg", MaxAmount: 64},
	{Key: "dragon_breath", MaxAmount: 64, CraftRemainder: "glass_bottle"},
	{Key: "dragon_egg", MaxAmount: 64},
	{Key: "dragon_head", MaxAmount: 64},
	{Key: "dried_kelp", MaxAmount: 64, Attributes: Edible},
	{Key: "dried_kelp_block", MaxAmount: 64},
	{Key: "dripstone_block", MaxAmount: 64},
	{Key: "dropper", MaxAmount: 64},
	{Key: "drowned_spawn_egg", MaxAmount: 64},
	{Key: "egg", MaxAmount: 16},
	{Key: "elder_guardian_spawn_egg", MaxAmount: 64},
	{Key: "elytra", MaxAmount: 1, MaxDurability: 432},
	{Key: "emerald", MaxAmount: 64},
	{Key: "emerald_block", MaxAmount: 64},
	{Key: "emerald_ore", MaxAmount: 64},
	{Key: "enchanted_book", MaxAmount: 1},
	{Key: "enchanted_golden_apple", MaxAmount: 64, Attributes: Edible},
	{Key: "enchanting_table", MaxAmount: 64},
	{Key: "end_crystal", MaxAmount: 64},
	{Key: "end_portal_frame", MaxAmount: 64},
	{Key: "end_rod", MaxAmount: 64},
	{Key: "end_stone", MaxAmount: 64},
	{Key: "end_stone_brick_slab", MaxAmount: 64},
	{Key: "end_stone_brick_stairs", MaxAmount: 64},
	{Key: "end_stone_brick_wall", MaxAmount: 64},
	{Key: "end_stone_bricks", MaxAmount: 64},
	{Key: "ender_chest", MaxAmount: 64},
	{Key: "ender_eye", MaxAmount: 64},
	{Key: "ender_pearl", MaxAmount: 16},
	{Key: "enderman_spawn_egg", MaxAmount: 64},
	{Key: "endermite_spawn_egg", MaxAmount: 64},
	{Key: "evoker_spawn_egg", MaxAmount: 64},
	{Key: "experience_bottle", MaxAmount: 64},
	{Key: "exposed_copper", MaxAmount: 64},
	{Key: "exposed_cut_copper", MaxAmount: 64},
	{Key: "exposed_cut_copper_slab", MaxAmount: 64},
	{Key: "exposed_cut_copper_stairs", MaxAmount: 64},
	{Key: "farmland", MaxAmount: 64},
	{Key: "feather", MaxAmount: 64},
	{Key: "fermented_spider_eye", MaxAmount: 64},
	{Key: "fern", MaxAmount: 64},
	{Key: "filled_map", MaxAmount: 64},
	{Key: "fire_charge", MaxAmount: 64},
	{Key: "fire_coral", MaxAmount: 64},
	{Key: "fire_coral_block", MaxAmount: 64},
	{Key: "fire_coral_fan", MaxAmount: 64},
	{Key: "firework_rocket", MaxAmount: 64},
	{Key: "firework_star", MaxAmount: 64},
	{Key: "fishing_rod", MaxAmount: 1, MaxDurability: 64},
	{Key: "fletching_table", MaxAmount: 64},
	{Key: "flint", MaxAmount: 64},
	{Key: "flint_and_steel", MaxAmount: 1, MaxDurability: 64},
	{Key: "flower_banner_pattern", MaxAmount: 1},
	{Key: "flower_pot", MaxAmount: 64},
	{Key: "flowering_azalea", MaxAmount: 64},
	{Key: "flowering_azalea_leaves", MaxAmount: 64},
	{Key: "fox_spawn_egg", MaxAmount: 64},
	{Key: "furnace", MaxAmount: 64},
	{Key: "furnace_minecart", MaxAmount: 1},
	{Key: "ghast_spawn_egg", MaxAmount: 64},
	{Key: "ghast_tear", MaxAmount: 64},
	{Key: "gilded_blackstone", MaxAmount: 64},
	{Key: "glass", MaxAmount: 64},
	{Key: "glass_bottle", MaxAmount: 64},
	{Key: "glass_pane", MaxAmount: 64},
	{Key: "glistering_melon_slice", MaxAmount: 64},
	{Key: "globe_banner_pattern", MaxAmount: 1},
	{Key: "glow_berries", MaxAmount: 64, Attributes: Edible},
	{Key: "glow_ink_sac", MaxAmount: 64},
	{Key: "glow_item_frame", MaxAmount: 64},
	{Key: "glow_lichen", MaxAmount: 64},
	{Key: "glow_squid_spawn_egg", MaxAmount: 64},
	{Key: "glowstone", MaxAmount: 64},
	{Key: "glowstone_dust", MaxAmount: 64},
	{Key: "goat_spawn_egg", MaxAmount: 64},
	{Key: "gold_block", MaxAmount: 64},
	{Key: "gold_ingot", MaxAmount: 64},
	{Key: "gold_nugget", MaxAmount: 64},
	{Key: "gold_ore", MaxAmount: 64},
	{Key: "golden_apple", MaxAmount: 64, Attributes: Edible},
	{Key: "golden_axe", MaxAmount: 1, MaxDurability: 32, Attributes: GoldTier},
	{Key: "golden_boots", MaxAmount: 1, MaxDurability: 91},
	{Key: "golden_carrot", MaxAmount: 64, Attributes: Edible},
	{Key: "golden_chestplate", MaxAmount: 1, MaxDurability: 112},
	{Key: "golden_helmet", MaxAmount: 1, MaxDurability: 77},
	{Key: "golden_hoe", MaxAmount: 1, MaxDurability: 32, Attributes: GoldTier},
	{Key: "golden_horse_armor", MaxAmount: 1},
	{Key: "golden_leggings", MaxAmount: 1, MaxDurability: 105},
	{Key: "golden_pickaxe", MaxAmount: 1, MaxDurability: 32, Attributes: GoldTier},
	{Key: "golden_shovel", MaxAmount: 1, MaxDurability: 32, Attributes: GoldTier},
	{Key: "golden_sword", MaxAmount: 1, MaxDurability: 32, Attributes: GoldTier},
	{Key: "granite", MaxAmount: 64},
	{Key: "granite_slab", MaxAmount: 64},
	{Key: "granite_stairs", MaxAmount: 64},
	{Key: "granite_wall", MaxAmount: 64},
	{Key: "grass", MaxAmount: 64},
	{Key: "grass_block", MaxAmount: 64},
	{Key: "gravel", MaxAmount: 64},
	{Key: "gray_banner", MaxAmount: 16},
	{Key: "gray_bed", MaxAmount: 1},
	{Key: "gray_candle", MaxAmount: 64},
	{Key: "gray_carpet", MaxAmount: 64},
	{Key: "gray_concrete", MaxAmount: 64},
	{Key: "gray_concrete_powder", MaxAmount: 64},
	{Key: "gray_dye", MaxAmount: 64},
	{Key: "gray_glazed_terracotta", MaxAmount: 64},
	{Key: "gray_shulker_box", MaxAmount: 1},
	{Key: "gray_stained_glass", MaxAmount: 64},
	{Key: "gray_stained_glass_pane", MaxAmount: 64},
	{Key: "gray_terracotta", MaxAmount: 64},
	{Key: "gray_wool", MaxAmount: 64},
	{Key: "green_banner", MaxAmount: 16},
	{Key: "green_bed", MaxAmount: 1},
	{Key: "green_candle", MaxAmount: 64},
	{Key: "green_carpet", MaxAmount: 64},
	{Key: "green_concrete", MaxAmount: 64},
	{Key: "green_concrete_powder", MaxAmount: 64},
	{Key: "green_dye", MaxAmount: 64},
	{Key: "green_glazed_terracotta", MaxAmount: 64},
	{Key: "green_shulker_box", MaxAmount: 1},
	{Key: "green_stained_glass", MaxAmount: 64},
	{Key: "green_stained_glass_pane", MaxAmount: 64},
	{Key: "green_terracotta", MaxAmount: 64},
	{Key: "green_wool", MaxAmount: 64},
	{Key: "grindstone", MaxAmount: 64},
	{Key: "guardian_spawn_egg", MaxAmount: 64},
	{Key: "gunpowder", MaxAmount: 64},
	{Key: "hanging_roots", MaxAmount: 64},
	{Key: "hay_block", MaxAmount: 64},
	{Key: "heart_of_the_sea", MaxAmount: 64},
	{Key: "heavy_weighted_pressure_plate", MaxAmount: 64},
	{Key: "hoglin_spawn_egg", MaxAmount: 64},
	{Key: "honey_block", MaxAmount: 64},
	{Key: "honey_bottle", MaxAmount: 16, CraftRemainder: "glass_bottle", Attributes: Edible},
	{Key: "honeycomb", MaxAmount: 64},
	{Key: "honeycomb_block", MaxAmount: 64},
	{Key: "hopper", MaxAmount: 64},
	{Key: "hopper_minecart", MaxAmount: 1},
	{Key: "horn_coral", MaxAmount: 64},
	{Key: "horn_coral_block", MaxAmount: 64},
	{Key: "horn_coral_fan", MaxAmount: 64},
	{Key: "horse_spawn_egg", MaxAmount: 64},
	{Key: "husk_spawn_egg", MaxAmount: 64},
	{Key: "ice", MaxAmount: 64},
	{Key: "infested_chiseled_stone_bricks", MaxAmount: 64},
	{Key: "infested_cobblestone", MaxAmount: 64},
	{Key: "infested_cracked_stone_bricks", MaxAmount: 64},
	{Key: "infested_deepslate", MaxAmount: 64},
	{Key: "infested_mossy_stone_bricks", MaxAmount: 64},
	{Key: "infested_stone", MaxAmount: 64},
	{Key: "infested_stone_bricks", MaxAmount: 64},
	{Key: "ink_sac", MaxAmount: 64},
	{Key: "iron_axe", MaxAmount: 1, MaxDurability: 250, Attributes: IronTier},
	{Key: "iron_bars", MaxAmount: 64},
	{Key: "iron_block", MaxAmount: 64},
	{Key: "iron_boots", MaxAmount: 1, MaxDurability: 195},
	{Key: "iron_chestplate", MaxAmount: 1, MaxDurability: 240},
	{Key: "iron_door", MaxAmount: 64},
	{Key: "iron_helmet", MaxAmount: 1, MaxDurability: 165},
	{Key: "iron_hoe", MaxAmount: 1, MaxDurability: 250, Attributes: IronTier},
	{Key: "iron_horse_armor", MaxAmount: 1},
	{Key: "iron_ingot", MaxAmount: 64},
	{Key: "iron_leggings", MaxAmount: 1, MaxDurability: 225},
	{Key: "iron_nugget", MaxAmount: 64},
	{Key: "iron_ore", MaxAmount: 64},
	{Key: "iron_pickaxe", MaxAmount: 1, MaxDurability: 250, Attributes: IronTier},
	{Key: "iron_shovel", MaxAmount: 1, MaxDurability: 250, Attributes: IronTier},
	{Key: "iron_sword", MaxAmount: 1, MaxDurability: 250, Attributes: IronTier},
	{Key: "iron_trapdoor", MaxAmount: 64},
	{Key: "item_frame", MaxAmount: 64},
	{Key: "jack_o_lantern", MaxAmount: 64},
	{Key: "jigsaw", MaxAmount: 64},
	{Key: "jukebox", MaxAmount: 64},
	{Key: "jungle_boat", MaxAmount: 1},
	{Key: "jungle_button", MaxAmount: 64},
	{Key: "jungle_door", MaxAmount: 64},
	{Key: "jungle_fence", MaxAmount: 64},
	{Key: "jungle_fence_gate", MaxAmount: 64},
	{Key: "jungle_leaves", MaxAmount: 64},
	{Key: "jungle_log", MaxAmount: 64},
	{Key: "jungle_planks", MaxAmount: 64},
	{Key: "jungle_pressure_plate", MaxAmount: 64},
	{Key: "jungle_sapling", MaxAmount: 64},
	{Key: "jungle_sign", MaxAmount: 16},
	{Key: "jungle_slab", MaxAmount: 64},
	{Key: "jungle_stairs", MaxAmount: 64},
	{Key: "jungle_trapdoor", MaxAmount: 64},
	{Key: "jungle_wood", MaxAmount: 64},
	{Key: "kelp", MaxAmount: 64},
	{Key: "knowledge_book", MaxAmount: 1},
	{Key: "ladder", MaxAmount: 64},
	{Key: "lantern", MaxAmount: 64},
	{Key: "lapis_block", MaxAmount: 64},
	{Key: "lapis_lazuli", MaxAmount: 64},
	{Key: "lapis_ore", MaxAmount: 64},
	{Key: "large_amethyst_bud", MaxAmount: 64},
	{Key: "large_fern", MaxAmount: 64},
	{Key: "lava_bucket", MaxAmount: 1, CraftRemainder: "bucket"},
	{Key: "lead", MaxAmount: 64},
	{Key: "leather", MaxAmount: 64},
	{Key: "leather_boots", MaxAmount: 1, MaxDurability: 65},
	{Key: "leather_chestplate", MaxAmount: 1, MaxDurability: 80},
	{Key: "leather_helmet", MaxAmount: 1, MaxDurability: 55},
	{Key: "leather_horse_armor", MaxAmount: 1},
	{Key: "leather_leggings", MaxAmount: 1, MaxDurability: 75},
	{Key: "lectern", MaxAmount: 64},
	{Key: "lever", MaxAmount: 64},
	{Key: "light", MaxAmount: 64},
	{Key: "light_blue_banner", MaxAmount: 16},
	{Key: "light_blue_bed", MaxAmount: 1},
	{Key: "light_blue_candle", MaxAmount: 64},
	{Key: "light_blue_carpet", MaxAmount: 64},
	{Key: "light_blue_concrete", MaxAmount: 64},
	{Key: "light_blue_concrete_powder", MaxAmount: 64},
	{Key: "light_blue_dye", MaxAmount: 64},
	{Key: "light_blue_glazed_terracotta", MaxAmount: 64},
	{Key: "light_blue_shulker_box", MaxAmount: 1},
	{Key: "light_blue_stained_glass", MaxAmount: 64},
	{Key: "light_blue_stained_glass_pane", MaxAmount: 64},
	{Key: "light_blue_terracotta", MaxAmount: 64},
	{Key: "light_blue_wool", MaxAmount: 64},
	{Key: "light_gray_banner", MaxAmount: 16},
	{Key: "light_gray_bed", MaxAmount: 1},
	{Key: "light_gray_candle", MaxAmount: 64},
	{Key: "light_gray_carpet", MaxAmount: 64},
	{Key: "light_gray_concrete", MaxAmount: 64},
	{Key: "light_gray_concrete_powder", MaxAmount: 64},
	{Key: "light_gray_dye", MaxAmount: 64},
	{Key: "light_gray_glazed_terracotta", MaxAmount: 64},
	{Key: "light_gray_shulker_box", MaxAmount: 1},
	{Key: "light_gray_stained_glass", MaxAmount: 64},
	{Key: "light_gray_stained_glass_pane", MaxAmount: 64},
	{Key: "light_gray_terracotta", MaxAmount: 64},
	{Key: "light_gray_wool", MaxAmount: 64},
	{Key: "light_weighted_pressure_plate", MaxAmount: 64},
	{Key: "lightning_rod", MaxAmount: 64},
	{Key: "lilac", MaxAmount: 64},
	{Key: "lily_of_the_valley", MaxAmount: 64},
	{Key: "lily_pad", MaxAmount: 64},
	{Key: "lime_banner", MaxAmount: 16},
	{Key: "lime_bed", MaxAmount: 1},
	{Key: "lime_candle", MaxAmount: 64},
	{Key: "lime_carpet", MaxAmount: 64},
	{Key: "lime_concrete", MaxAmount: 64},
	{Key: "lime_concrete_powder", MaxAmount: 64},
	{Key: "lime_dye", MaxAmount: 64},
	{Key: "lime_glazed_terracotta", MaxAmount: 64},
	{Key: "lime_shulker_box", MaxAmount: 1},
	{Key: "lime_stained_glass", MaxAmount: 64},
	{Key: "lime_stained_glass_pane", MaxAmount: 64},
	{Key: "lime_terracotta", MaxAmount: 64},
	{Key: "lime_wool", MaxAmount: 64},
	{Key: "lingering_potion", MaxAmount: 1},
	{Key: "llama_spawn_egg", MaxAmount: 64},
	{Key: "lodestone", MaxAmount: 64},
	{Key: "loom", MaxAmount: 64},
	{Key: "magenta_banner", MaxAmount: 16},
	{Key: "magenta_bed", MaxAmount: 1},
	{Key: "magenta_candle", MaxAmount: 64},
	{Key: "magenta_carpet", MaxAmount: 64},
	{Key: "magenta_concrete", MaxAmount: 64},
	{Key: "magenta_concrete_powder", MaxAmount: 64},
	{Key: "magenta_dye", MaxAmount: 64},
	{Key: "magenta_glazed_terracotta", MaxAmount: 64},
	{Key: "magenta_shulker_box", MaxAmount: 1},
	{Key: "magenta_stained_glass", MaxAmount: 64},
	{Key: "magenta_stained_glass_pane", MaxAmount: 64},
	{Key: "magenta_terracotta", MaxAmount: 64},
	{Key: "magenta_wool", MaxAmount: 64},
	{Key: "magma_block", MaxAmount: 64},
	{Key: "magma_cream", MaxAmount: 64},
	{Key: "magma_cube_spawn_egg", MaxAmount: 64},
	{Key: "map", MaxAmount: 64},
	{Key: "medium_amethyst_bud", MaxAmount: 64},
	{Key: "melon", MaxAmount: 64},
	{Key: "melon_seeds", MaxAmount: 64},
	{Key: "melon_slice", MaxAmount: 64, Attributes: Edible},
	{Key: "milk_bucket", MaxAmount: 1, CraftRemainder: "bucket"},
	{Key: "minecart", MaxAmount: 1},
	{Key: "mojang_banner_pattern", MaxAmount: 1},
	{Key: "mooshroom_spawn_egg", MaxAmount: 64},
	{Key: "moss_block", MaxAmount: 64},
	{Key: "moss_carpet", MaxAmount: 64},
	{Key: "mossy_cobblestone", MaxAmount: 64},
	{Key: "mossy_cobblestone_slab", MaxAmount: 64},
	{Key: "mossy_cobblestone_stairs", MaxAmount: 64},
	{Key: "mossy_cobblestone_wall", MaxAmount: 64},
	{Key: "mossy_stone_brick_slab", MaxAmount: 64},
	{Key: "mossy_stone_brick_stairs", MaxAmount: 64},
	{Key: "mossy_stone_brick_wall", MaxAmount: 64},
	{Key: "mossy_stone_bricks", MaxAmount: 64},
	{Key: "mule_spawn_egg", MaxAmount: 64},
	{Key: "mushroom_stem", MaxAmount: 64},
	{Key: "mushroom_stew", MaxAmount: 1, Attributes: Edible},
	{Key: "music_disc_11", MaxAmount: 1, Attributes: MusicDisc},
	{Key: "music_disc_13", MaxAmount: 1, Attributes: MusicDisc},
	{Key: "music_disc_blocks", MaxAmount: 1, Attributes: MusicDisc},
	{Key: "music_disc_cat", MaxAmount: 1, Attributes: MusicDisc},
	{Key: "music_disc_chirp", MaxAmount: 1, Attributes: MusicDisc},
	{Key: "music_disc_far", MaxAmount: 1, Attributes: MusicDisc},
	{Key: "music_disc_mall", MaxAmount: 1, Attributes: MusicDisc},
	{Key: "music_disc_mellohi", MaxAmount: 1, Attributes: MusicDisc},
	{Key: "music_disc_pigstep", MaxAmount: 1, Attributes: MusicDisc},
	{Key: "music_disc_stal", MaxAmount: 1, Attributes: MusicDisc},
	{Key: "music_disc_strad", MaxAmount: 1, Attributes: MusicDisc},
	{Key: "music_disc_wait", MaxAmount: 1, Attributes: MusicDisc},
	{Key: "music_disc_ward", MaxAmount: 1, Attributes: MusicDisc},
	{Key: "mutton", MaxAmount: 64, Attributes: Edible},
	{Key: "mycelium", MaxAmount: 64},
	{Key: "name_tag", MaxAmount: 64},
	{Key: "nautilus_shell", MaxAmount: 64},
	{Key: "nether_brick", MaxAmount: 64},
	{Key: "nether_brick_fence", MaxAmount: 64},
	{Key: "nether_brick_slab", MaxAmount: 64},
	{Key: "nether_brick_stairs", MaxAmount: 64},
	{Key: "nether_brick_wall", MaxAmount: 64},
	{Key: "nether_bricks", MaxAmount: 64},
	{Key: "nether_gold_ore", MaxAmount: 64},
	{Key: "nether_quartz_ore", MaxAmount: 64},
	{Key: "nether_sprouts", MaxAmount: 64},
	{Key: "nether_star", MaxAmount: 64},
	{Key: "nether_wart", MaxAmount: 64},
	{Key: "nether_wart_block", MaxAmount: 64},
	{Key: "netherite_axe", MaxAmount: 1, MaxDurability: 2031, Attributes: FireResistant | NetheriteTier},
	{Key: "netherite_block", MaxAmount: 64, Attributes: FireResistant},
	{Key: "netherite_boots", MaxAmount: 1, MaxDurability: 481, Attributes: FireResistant},
	{Key: "netherite_chestplate", MaxAmount: 1, MaxDurability: 592, Attributes: FireResistant},
	{Key: "netherite_helmet", MaxAmount: 1, MaxDurability: 407, Attributes: FireResistant},
	{Key: "netherite_hoe", MaxAmount: 1, MaxDurability: 2031, Attributes: FireResistant | NetheriteTier},
	{Key: "netherite_ingot", MaxAmount: 64, Attributes: FireResistant},
	{Key: "netherite_leggings", MaxAmount: 1, MaxDurability: 555, Attributes: FireResistant},
	{Key: "netherite_pickaxe", MaxAmount: 1, MaxDurability: 2031, Attributes: FireResistant | NetheriteTier},
	{Key: "netherite_scrap", MaxAmount: 64, Attributes: FireResistant},
	{Key: "netherite_shovel", MaxAmount: 1, MaxDurability: 2031, Attributes: FireResistant | NetheriteTier},
	{Key: "netherite_sword", MaxAmount: 1, MaxDurability: 2031, Attributes: FireResistant | NetheriteTier},
	{Key: "netherrack", MaxAmount: 64},
	{Key: "note_block", MaxAmount: 64},
	{Key: "oak_boat", MaxAmount: 1},
	{Key: "oak_button", MaxAmount: 64},
	{Key: "oak_door", MaxAmount: 64},
	{Key: "oak_fence", MaxAmount: 64},
	{Key: "oak_fence_gate", MaxAmount: 64},
	{Key: "oak_leaves", MaxAmount: 64},
	{Key: "oak_log", MaxAmount: 64},
	{Key: "oak_planks", MaxAmount: 64},
	{Key: "oak_pressure_plate", MaxAmount: 64},
	{Key: "oak_sapling", MaxAmount: 64},
	{Key: "oak_sign", MaxAmount: 16},
	{Key: "oak_slab", MaxAmount: 64},
	{Key: "oak_stairs", MaxAmount: 64},
	{Key: "oak_trapdoor", MaxAmount: 64},
	{Key: "oak_wood", MaxAmount: 64},
	{Key: "observer", MaxAmount: 64},
	{Key: "obsidian", MaxAmount: 64},
	{Key: "ocelot_spawn_egg", MaxAmount: 64},
	{Key: "orange_banner", MaxAmount: 16},
	{Key: "orange_bed", MaxAmount: 1},
	{Key: "orange_candle", MaxAmount: 64},
	{Key: "orange_carpet", MaxAmount: 64},
	{Key: "orange_concrete", MaxAmount: 64},
	{Key: "orange_concrete_powder", MaxAmount: 64},
	{Key: "orange_dye", MaxAmount: 64},
	{Key: "orange_glazed_terracotta", MaxAmount: 64},
	{Key: "orange_shulker_box", MaxAmount: 1},
	{Key: "orange_stained_glass", MaxAmount: 64},
	{Key: "orange_stained_glass_pane", MaxAmount: 64},
	{Key: "orange_terracotta", MaxAmount: 64},
	{Key: "orange_tulip", MaxAmount: 64},
	{Key: "orange_wool", MaxAmount: 64},
	{Key: "oxeye_daisy", MaxAmount: 64},
	{Key: "oxidized_copper", MaxAmount: 64},
	{Key: "oxidized_cut_copper", MaxAmount: 64},
	{Key: "oxidized_cut_copper_slab", MaxAmount: 64},
	{Key: "oxidized_cut_copper_stairs", MaxAmount: 64},
	{Key: "packed_ice", MaxAmount: 64},
	{Key: "painting", MaxAmount: 64},
	{Key: "panda_spawn_egg", MaxAmount: 64},
	{Key: "paper", MaxAmount: 64},
	{Key: "parrot_spawn_egg", MaxAmount: 64},
	{Key: "peony", MaxAmount: 64},
	{Key: "petrified_oak_slab", MaxAmount: 64},
	{Key: "phantom_membrane", MaxAmount: 64},
	{Key: "phantom_spawn_egg", MaxAmount: 64},
	{Key: "pig_spawn_egg", MaxAmount: 64},
	{Key: "piglin_banner_pattern", MaxAmount: 1},
	{Key: "piglin_brute_spawn_egg", MaxAmount: 64},
	{Key: "piglin_spawn_egg", MaxAmount: 64},
	{Key: "pillager_spawn_egg", MaxAmount: 64},
	{Key: "pink_banner", MaxAmount: 16},
	{Key: "pink_bed", MaxAmount: 1},
	{Key: "pink_candle", MaxAmount: 64},
	{Key: "pink_carpet", MaxAmount: 64},
	{Key: "pink_concrete", MaxAmount: 64},
	{Key: "pink_concrete_powder", MaxAmount: 64},
	{Key: "pink_dye", MaxAmount: 64},
	{Key: "pink_glazed_terracotta", MaxAmount: 64},
	{Key: "pink_shulker_box", MaxAmount: 1},
	{Key: "pink_stained_glass", MaxAmount: 64},
	{Key: "pink_stained_glass_pane", MaxAmount: 64},
	{Key: "pink_terracotta", MaxAmount: 64},
	{Key: "pink_tulip", MaxAmount: 64},
	{Key: "pink_wool", MaxAmount: 64},
	{Key: "piston", MaxAmount: 64},
	{Key: "player_head", MaxAmount: 64},
	{Key: "podzol", MaxAmount: 64},
	{Key: "pointed_dripstone", MaxAmount: 64},
	{Key: "poisonous_potato", MaxAmount: 64, Attributes: Edible},
	{Key: "polar_bear_spawn_egg", MaxAmount: 64},
	{Key: "polished_andesite", MaxAmount: 64},
	{Key: "polished_andesite_slab", MaxAmount: 64},
	{Key: "polished_andesite_stairs", MaxAmount: 64},
	{Key: "polished_basalt", MaxAmount: 64},
	{Key: "polished_blackstone", MaxAmount: 64},
	{Key: "polished_blackstone_brick_slab", MaxAmount: 64},
	{Key: "polished_blackstone_brick_stairs", MaxAmount: 64},
	{Key: "polished_blackstone_brick_wall", MaxAmount: 64},
	{Key: "polished_blackstone_bricks", MaxAmount: 64},
	{Key: "polished_blackstone_button", MaxAmount: 64},
	{Key: "polished_blackstone_pressure_plate", MaxAmount: 64},
	{Key: "polished_blackstone_slab", MaxAmount: 64},
	{Key: "polished_blackstone_stairs", MaxAmount: 64},
	{Key: "polished_blackstone_wall", MaxAmount: 64},
	{Key: "polished_deepslate", MaxAmount: 64},
	{Key: "polished_deepslate_slab", MaxAmount: 64},
	{Key: "polished_deepslate_stairs", MaxAmount: 64},
	{Key: "polished_deepslate_wall", MaxAmount: 64},
	{Key: "polished_diorite", MaxAmount: 64},
	{Key: "polished_diorite_slab", MaxAmount: 64},
	{Key: "polished_diorite_stairs", MaxAmount: 64},
	{Key: "polished_granite", MaxAmount: 64},
	{Key: "polished_granite_slab", MaxAmount: 64},
	{Key: "polished_granite_stairs", MaxAmount: 64},
	{Key: "popped_chorus_fruit", MaxAmount: 64},
	{Key: "poppy", MaxAmount: 64},
	{Key: "porkchop", MaxAmount: 64, Attributes: Edible},
	{Key: "potato", MaxAmount: 64, Attributes: Edible},
	{Key: "potion", MaxAmount: 1},
	{Key: "powder_snow_bucket", MaxAmount: 1},
	{Key: "powered_rail", MaxAmount: 64},
	{Key: "prismarine", MaxAmount: 64},
	{Key: "prismarine_brick_slab", MaxAmount: 64},
	{Key: "prismarine_brick_stairs", MaxAmount: 64},
	{Key: "prismarine_bricks", MaxAmount: 64},
	{Key: "prismarine_crystals", MaxAmount: 64},
	{Key: "prismarine_shard", MaxAmount: 64},
	{Key: "prismarine_slab", MaxAmount: 64},
	{Key: "prismarine_stairs", MaxAmount: 64},
	{Key: "prismarine_wall", MaxAmount: 64},
	{Key: "pufferfish", MaxAmount: 64, Attributes: Edible},
	{Key: "pufferfish_bucket", MaxAmount: 1},
	{Key: "pufferfish_spawn_egg", MaxAmount: 64},
	{Key: "pumpkin", MaxAmount: 64},
	{Key: "pumpkin_pie", MaxAmount: 64, Attributes: Edible},
	{Key: "pumpkin_seeds", MaxAmount: 64},
	{Key: "purple_banner", MaxAmount: 16},
	{Key: "purple_bed", MaxAmount: 1},
	{Key: "purple_candle", MaxAmount: 64},
	{Key: "purple_carpet", MaxAmount: 64},
	{Key: "purple_concrete", MaxAmount: 64},
	{Key: "purple_concrete_powder", MaxAmount: 64},
	{Key: "purple_dye", MaxAmount: 64},
	{Key: "purple_glazed_terracotta", MaxAmount: 64},
	{Key: "purple_shulker_box", MaxAmount: 1},
	{Key: "purple_stained_glass", MaxAmount: 64},
	{Key: "purple_stained_glass_pane", MaxAmount: 64},
	{Key: "purple_terracotta", MaxAmount: 64},
	{Key: "purple_wool", MaxAmount: 64},
	{Key: "purpur_block", MaxAmount: 64},
	{Key: "purpur_pillar", MaxAmount: 64},
	{Key: "purpur_slab", MaxAmount: 64},
	{Key: "purpur_stairs", MaxAmount: 64},
	{Key: "quartz", MaxAmount: 64},
	{Key: "quartz_block", MaxAmount: 64},
	{Key: "quartz_bricks", MaxAmount: 64},
	{Key: "quartz_pillar", MaxAmount: 64},
	{Key: "quartz_slab", MaxAmount: 64},
	{Key: "quartz_stairs", MaxAmount: 64},
	{Key: "rabbit", MaxAmount: 64, Attributes: Edible},
	{Key: "rabbit_foot", MaxAmount: 64},
	{Key: "rabbit_hide", MaxAmount: 64},
	{Key: "rabbit_spawn_egg", MaxAmount: 64},
	{Key: "rabbit_stew", MaxAmount: 1, Attributes: Edible},
	{Key: "rail", MaxAmount: 64},
	{Key: "ravager_spawn_egg", MaxAmount: 64},
	{Key: "raw_copper", MaxAmount: 64},
	{Key: "raw_copper_block", MaxAmount: 64},
	{Key: "raw_gold", MaxAmount: 64},
	{Key: "raw_gold_block", MaxAmount: 64},
	{Key: "raw_iron", MaxAmount: 64},
	{Key: "raw_iron_block", MaxAmount: 64},
	{Key: "red_banner", MaxAmount: 16},
	{Key: "red_bed", MaxAmount: 1},
	{Key: "red_candle", MaxAmount: 64},
	{Key: "red_carpet", MaxAmount: 64},
	{Key: "red_concrete", MaxAmount: 64},
	{Key: "red_concrete_powder", MaxAmount: 64},
	{Key: "red_dye", MaxAmount: 64},
	{Key: "red_glazed_terracotta", MaxAmount: 64},
	{Key: "red_mushroom", MaxAmount: 64},
	{Key: "red_mushroom_block", MaxAmount: 64},
	{Key: "red_nether_brick_slab", MaxAmount: 64},
	{Key: "red_nether_brick_stairs", MaxAmount: 64},
	{Key: "red_nether_brick_wall", MaxAmount: 64},
	{Key: "red_nether_bricks", MaxAmount: 64},
	{Key: "red_sand", MaxAmount: 64},
	{Key: "red_sandstone", MaxAmount: 64},
	{Key: "red_sandstone_slab", MaxAmount: 64},
	{Key: "red_sandstone_stairs", MaxAmount: 64},
	{Key: "red_sandstone_wall", MaxAmount: 64},
	{Key: "red_shulker_box", MaxAmount: 1},
	{Key: "red_stained_glass", MaxAmount: 64},
	{Key: "red_stained_glass_pane", MaxAmount: 64},
	{Key: "red_terracotta", MaxAmount: 64},
	{Key: "red_tulip", MaxAmount: 64},
	{Key: "red_wool", MaxAmount: 64},
	{Key: "redstone", MaxAmount: 64},
	{Key: "redstone_block", MaxAmount: 64},
	{Key: "redstone_lamp", MaxAmount: 64},
	{Key: "redstone_ore", MaxAmount: 64},
	{Key: "redstone_torch", MaxAmount: 64},
	{Key: "repeater", MaxAmount: 64},
	{Key: "repeating_command_block", MaxAmount: 64},
	{Key: "respawn_anchor", MaxAmount: 64},
	{Key: "rooted_dirt", MaxAmount: 64},
	{Key: "rose_bush", MaxAmount: 64},
	{Key: "rotten_flesh", MaxAmount: 64, Attributes: Edible},
	{Key: "saddle", MaxAmount: 1},
	{Key: "salmon", MaxAmount: 64, Attributes: Edible},
	{Key: "salmon_bucket", MaxAmount: 1},
	{Key: "salmon_spawn_egg", MaxAmount: 64},
	{Key: "sand", MaxAmount: 64},
	{Key: "sandstone", MaxAmount: 64},
	{Key: "sandstone_slab", MaxAmount: 64},
	{Key: "sandstone_stairs", MaxAmount: 64},
	{Key: "sandstone_wall", MaxAmount: 64},
	{Key: "scaffolding", MaxAmount: 64},
	{Key: "sculk_sensor", MaxAmount: 64},
	{Key: "scute", MaxAmount: 64},
	{Key: "sea_lantern", MaxAmount: 64},
	{Key: "sea_pickle", MaxAmount: 64},
	{Key: "seagrass", MaxAmount: 64},
	{Key: "shears", MaxAmount: 1, MaxDurability: 238},
	{Key: "sheep_spawn_egg", MaxAmount: 64},
	{Key: "shield", MaxAmount: 1, MaxDurability: 336},
	{Key: "shroomlight", MaxAmount: 64},
	{Key: "shulker_box", MaxAmount: 1},
	{Key: "shulker_shell", MaxAmount: 64},
	{Key: "shulker_spawn_egg", MaxAmount: 64},
	{Key: "silverfish_spawn_egg", MaxAmount: 64},
	{Key: "skeleton_horse_spawn_egg", MaxAmount: 64},
	{Key: "skeleton_skull", MaxAmount: 64},
	{Key: "skeleton_spawn_egg", MaxAmount: 64},
	{Key: "skull_banner_pattern", MaxAmount: 1},
	{Key: "slime_ball", MaxAmount: 64},
	{Key: "slime_block", MaxAmount: 64},
	{Key: "slime_spawn_egg", MaxAmount: 64},
	{Key: "small_amethyst_bud", MaxAmount: 64},
	{Key: "small_dripleaf", MaxAmount: 64},
	{Key: "smithing_table", MaxAmount: 64},
	{Key: "smoker", MaxAmount: 64},
	{Key: "smooth_basalt", MaxAmount: 64},
	{Key: "smooth_quartz", MaxAmount: 64},
	{Key: "smooth_quartz_slab", MaxAmount: 64},
	{Key: "smooth_quartz_stairs", MaxAmount: 64},
	{Key: "smooth_red_sandstone", MaxAmount: 64},
	{Key: "smooth_red_sandstone_slab", MaxAmount: 64},
	{Key: "smooth_red_sandstone_stairs", MaxAmount: 64},
	{Key: "smooth_sandstone", MaxAmount: 64},
	{Key: "smooth_sandstone_slab", MaxAmount: 64},
	{Key: "smooth_sandstone_stairs", MaxAmount: 64},
	{Key: "smooth_stone", MaxAmount: 64},
	{Key: "smooth_stone_slab", MaxAmount: 64},
	{Key: "snow", MaxAmount: 64},
	{Key: "snow_block", MaxAmount: 64},
	{Key: "snowball", MaxAmount: 16},
	{Key: "soul_campfire", MaxAmount: 64},
	{Key: "soul_lantern", MaxAmount: 64},
	{Key: "soul_sand", MaxAmount: 64},
	{Key: "soul_soil", MaxAmount: 64},
	{Key: "soul_torch", MaxAmount: 64},
	{Key: "spawner", MaxAmount: 64},
	{Key: "spectral_arrow", MaxAmount: 64},
	{Key: "spider_eye", MaxAmount: 64, Attributes: Edible},
	{Key: "spider_spawn_egg", MaxAmount: 64},
	{Key: "splash_potion", MaxAmount: 1},
	{Key: "sponge", MaxAmount: 64},
	{Key: "spore_blossom", MaxAmount: 64},
	{Key: "spruce_boat", MaxAmount: 1},
	{Key: "spruce_button", MaxAmount: 64},
	{Key: "spruce_door", MaxAmount: 64},
	{Key: "spruce_fence", MaxAmount: 64},
	{Key: "spruce_fence_gate", MaxAmount: 64},
	{Key: "spruce_leaves", MaxAmount: 64},
	{Key: "spruce_log", MaxAmount: 64},
	{Key: "spruce_planks", MaxAmount: 64},
	{Key: "spruce_pressure_plate", MaxAmount: 64},
	{Key: "spruce_sapling", MaxAmount: 64},
	{Key: "spruce_sign", MaxAmount: 16},
	{Key: "spruce_slab", MaxAmount: 64},
	{Key: "spruce_stairs", MaxAmount: 64},
	{Key: "spruce_trapdoor", MaxAmount: 64},
	{Key: "spruce_wood", MaxAmount: 64},
	{Key: "spyglass", MaxAmount: 1},
	{Key: "squid_spawn_egg", MaxAmount: 64},
	{Key: "stick", MaxAmount: 64},
	{Key: "sticky_piston", MaxAmount: 64},
	{Key: "stone", MaxAmount: 64},
	{Key: "stone_axe", MaxAmount: 1, MaxDurability: 131, Attributes: StoneTier},
	{Key: "stone_brick_slab", MaxAmount: 64},
	{Key: "stone_brick_stairs", MaxAmount: 64},
	{Key: "stone_brick_wall", MaxAmount: 64},
	{Key: "stone_bricks", MaxAmount: 64},
	{Key: "stone_button", MaxAmount: 64},
	{Key: "stone_hoe", MaxAmount: 1, MaxDurability: 131, Attributes: StoneTier},
	{Key: "stone_pickaxe", MaxAmount: 1, MaxDurability: 131, Attributes: StoneTier},
	{Key: "stone_pressure_plate", MaxAmount: 64},
	{Key: "stone_shovel", MaxAmount: 1, MaxDurability: 131, Attributes: StoneTier},
	{Key: "stone_slab", MaxAmount: 64},
	{Key: "stone_stairs", MaxAmount: 64},
	{Key: "stone_sword", MaxAmount: 1, MaxDurability: 131, Attributes: StoneTier},
	{Key: "stonecutter", MaxAmount: 64},
	{Key: "stray_spawn_egg", MaxAmount: 64},
	{Key: "strider_spawn_egg", MaxAmount: 64},
	{Key: "string", MaxAmount: 64},
	{Key: "stripped_acacia_log", MaxAmount: 64},
	{Key: "stripped_acacia_wood", MaxAmount: 64},
	{Key: "stripped_birch_log", MaxAmount: 64},
	{Key: "stripped_birch_wood", MaxAmount: 64},
	{Key: "stripped_crimson_hyphae", MaxAmount: 64},
	{Key: "stripped_crimson_stem", MaxAmount: 64},
	{Key: "stripped_dark_oak_log", MaxAmount: 64},
	{Key: "stripped_dark_oak_wood", MaxAmount: 64},
	{Key: "stripped_jungle_log", MaxAmount: 64},
	{Key: "stripped_jungle_wood", MaxAmount: 64},
	{Key: "stripped_oak_log", MaxAmount: 64},
	{Key: "stripped_oak_wood", MaxAmount: 64},
	{Key: "stripped_spruce_log", MaxAmount: 64},
	{Key: "stripped_spruce_wood", MaxAmount: 64},
	{Key: "stripped_warped_hyphae", MaxAmount: 64},
	{Key: "stripped_warped_stem", MaxAmount: 64},
	{Key: "structure_block", MaxAmount: 64},
	{Key: "structure_void", MaxAmount: 64},
	{Key: "sugar", MaxAmount: 64},
	{Key: "sugar_cane", MaxAmount: 64},
	{Key: "sunflower", MaxAmount: 64},
	{Key: "suspicious_stew", MaxAmount: 1, Attributes: Edible},
	{Key: "sweet_berries", MaxAmount: 64, Attributes: Edible},
	{Key: "tall_grass", MaxAmount: 64},
	{Key: "target", MaxAmount: 64},
	{Key: "terracotta", MaxAmount: 64},
	{Key: "tinted_glass", MaxAmount: 64},
	{Key: "tipped_arrow", MaxAmount: 64},
	{Key: "tnt", MaxAmount: 64},
	{Key: "tnt_minecart", MaxAmount: 1},
	{Key: "torch", MaxAmount: 64},
	{Key: "totem_of_undying", MaxAmount: 1},
	{Key: "trader_llama_spawn_egg", MaxAmount: 64},
	{Key: "trapped_chest", MaxAmount: 64},
	{Key: "trident", MaxAmount: 1, MaxDurability: 250},
	{Key: "tripwire_hook", MaxAmount: 64},
	{Key: "tropical_fish", MaxAmount: 64, Attributes: Edible},
	{Key: "tropical_fish_bucket", MaxAmount: 1},
	{Key: "tropical_fish_spawn_egg", MaxAmount: 64},
	{Key: "tube_coral", MaxAmount: 64},
	{Key: "tube_coral_block", MaxAmount: 64},
	{Key: "tube_coral_fan", MaxAmount: 64},
	{Key: "tuff", MaxAmount: 64},
	{Key: "turtle_egg", MaxAmount: 64},
	{Key: "turtle_helmet", MaxAmount: 1, MaxDurability: 275},
	{Key: "turtle_spawn_egg", MaxAmount: 64},
	{Key: "twisting_vines", MaxAmount: 64},
	{Key: "vex_spawn_egg", MaxAmount: 64},
	{Key: "villager_spawn_egg", MaxAmount: 64},
	{Key: "vindicator_spawn_egg", MaxAmount: 64},
	{Key: "vine", MaxAmount: 64},
	{Key: "wandering_trader_spawn_egg", MaxAmount: 64},
	{Key: "warped_button", MaxAmount: 64},
	{Key: "warped_door", MaxAmount: 64},
	{Key: "warped_fence", MaxAmount: 64},
	{Key: "warped_fence_gate", MaxAmount: 64},
	{Key: "warped_fungus", MaxAmount: 64},
	{Key: "warped_fungus_on_a_stick", MaxAmount: 1, MaxDurability: 100},
	{Key: "warped_hyphae", MaxAmount: 64},
	{Key: "warped_nylium", MaxAmount: 64},
	{Key: "warped_planks", MaxAmount: 64},
	{Key: "warped_pressure_plate", MaxAmount: 64},
	{Key: "warped_roots", MaxAmount: 64},
	{Key: "warped_sign", MaxAmount: 16},
	{Key: "warped_slab", MaxAmount: 64},
	{Key: "warped_stairs", MaxAmount: 64},
	{Key: "warped_stem", MaxAmount: 64},
	{Key: "warped_trapdoor", MaxAmount: 64},
	{Key: "warped_wart_block", MaxAmount: 64},
	{Key: "water_bucket", MaxAmount: 1, CraftRemainder: "bucket"},
	{Key: "waxed_copper_block", MaxAmount: 64},
	{Key: "waxed_cut_copper", MaxAmount: 64},
	{Key: "waxed_cut_copper_slab", MaxAmount: 64},
	{Key: "waxed_cut_copper_stairs", MaxAmount: 64},
	{Key: "waxed_exposed_copper", MaxAmount: 64},
	{Key: "waxed_exposed_cut_copper", MaxAmount: 64},
	{Key: "waxed_exposed_cut_copper_slab", MaxAmount: 64},
	{Key: "waxed_exposed_cut_copper_stairs", MaxAmount: 64},
	{Key: "waxed_oxidized_copper", MaxAmount: 64},
	{Key: "waxed_oxidized_cut_copper", MaxAmount: 64},
	{Key: "waxed_oxidized_cut_copper_slab", MaxAmount: 64},
	{Key: "waxed_oxidized_cut_copper_stairs", MaxAmount: 64},
	{Key: "waxed_weathered_copper", MaxAmount: 64},
	{Key: "waxed_weathered_cut_copper", MaxAmount: 64},
	{Key: "waxed_weathered_cut_copper_slab", MaxAmount: 64},
	{Key: "waxed_weathered_cut_copper_stairs", MaxAmount: 64},
	{Key: "weathered_copper", MaxAmount: 64},
	{Key: "weathered_cut_copper", MaxAmount: 64},
	{Key: "weathered_cut_copper_slab", MaxAmount: 64},
	{Key: "weathered_cut_copper_stairs", MaxAmount: 64},
	{Key: "weeping_vines", MaxAmount: 64},
	{Key: "wet_sponge", MaxAmount: 64},
	{Key: "wheat", MaxAmount: 64},
	{Key: "wheat_seeds", MaxAmount: 64},
	{Key: "white_banner", MaxAmount: 16},
	{Key: "white_bed", MaxAmount: 1},
	{Key: "white_candle", MaxAmount: 64},
	{Key: "white_carpet", MaxAmount: 64},
	{Key: "white_concrete", MaxAmount: 64},
	{Key: "white_concrete_powder", MaxAmount: 64},
	{Key: "white_dye", MaxAmount: 64},
	{Key: "white_glazed_terracotta", MaxAmount: 64},
	{Key: "white_shulker_box", MaxAmount: 1},
	{Key: "white_stained_glass", MaxAmount: 64},
	{Key: "white_stained_glass_pane", MaxAmount: 64},
	{Key: "white_terracotta", MaxAmount: 64},
	{Key: "white_tulip", MaxAmount: 64},
	{Key: "white_wool", MaxAmount: 64},
	{Key: "witch_spawn_egg", MaxAmount: 64},
	{Key: "wither_rose", MaxAmount: 64},
	{Key: "wither_skeleton_skull", MaxAmount: 64},
	{Key: "wither_skeleton_spawn_egg", MaxAmount: 64},
	{Key: "wolf_spawn_egg", MaxAmount: 64},
	{Key: "wooden_axe", MaxAmount: 1, MaxDurability: 59, Attributes: WoodTier},
	{Key: "wooden_hoe", MaxAmount: 1, MaxDurability: 59, Attributes: WoodTier},
	{Key: "wooden_pickaxe", MaxAmount: 1, MaxDurability: 59, Attributes: WoodTier},
	{Key: "wooden_shovel", MaxAmount: 1, MaxDurability: 59, Attributes: WoodTier},
	{Key: "wooden_sword", MaxAmount: 1, MaxDurability: 59, Attributes: WoodTier},
	{Key: "writable_book", MaxAmount: 1},
	{Key: "written_book", MaxAmount: 16},
	{Key: "yellow_banner", MaxAmount: 16},
	{Key: "yellow_bed", MaxAmount: 1},
	{Key: "yellow_candle", MaxAmount: 64},
	{Key: "yellow_carpet", MaxAmount: 64},
	{Key: "yellow_concrete", MaxAmount: 64},
	{Key: "yellow_concrete_powder", MaxAmount: 64},
	{Key: "yellow_dye", MaxAmount: 64},
	{Key: "yellow_glazed_terracotta", MaxAmount: 64},
	{Key: "yellow_shulker_box", MaxAmount: 1},
	{Key: "yellow_stained_glass", MaxAmount: 64},
	{Key: "yellow_stained_glass_pane", MaxAmount: 64},
	{Key: "yellow_terracotta", MaxAmount: 64},
	{Key: "yellow_wool", MaxAmount: 64},
	{Key: "zoglin_spawn_egg", MaxAmount: 64},
	{Key: "zombie_head", MaxAmount: 64},
	{Key: "zombie_horse_spawn_egg", MaxAmount: 64},
	{Key: "zombie_spawn_egg", MaxAmount: 64},
	{Key: "zombie_villager_spawn_egg", MaxAmount: 64},
	{Key: "zombified_piglin_spawn_egg", MaxAmount: 64},
}
